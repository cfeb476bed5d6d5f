// Package calc performs the demonstration arithmetic with visual feedback.
package calc

import (
	"fmt"
	"time"

	"github.com/saluto/saluto/internal/cliui"
	"github.com/saluto/saluto/localization"
)

// addDuration paces the fake progress bar shown while "calculating".
const addDuration = 800 * time.Millisecond

// Calculator announces its operations through the UI before returning the
// answer.
type Calculator struct {
	ui  *cliui.UI
	loc *localization.Localizer
}

// New creates a calculator bound to the given UI and localizer.
func New(ui *cliui.UI, loc *localization.Localizer) *Calculator {
	return &Calculator{ui: ui, loc: loc}
}

// Add announces and performs a + b. The progress animation runs only when
// the UI has animation enabled.
func (c *Calculator) Add(a, b float64) float64 {
	c.ui.ShowOperation(fmt.Sprintf("%s: %v + %v", c.loc.Get("calculating"), a, b))
	c.ui.ShowProgress(c.loc.Get("progress"), addDuration)
	return a + b
}
