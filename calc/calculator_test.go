package calc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saluto/saluto/internal/cliui"
	"github.com/saluto/saluto/localization"
)

func newCalculator() (*Calculator, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := cliui.DefaultConfig()
	cfg.Animation = false
	ui := cliui.New(&buf, cfg)
	return New(ui, localization.NewLocalizer(localization.English)), &buf
}

func TestCalculator_Add(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"positive", 5, 3, 8},
		{"negative and positive", -1, 1, 0},
		{"zeros", 0, 0, 0},
		{"fractions", 1.5, 2.25, 3.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newCalculator()
			assert.Equal(t, tt.want, c.Add(tt.a, tt.b))
		})
	}
}

func TestCalculator_Add_AnnouncesOperation(t *testing.T) {
	c, buf := newCalculator()

	c.Add(5, 3)

	assert.Contains(t, buf.String(), "Calculating: 5 + 3")
}
