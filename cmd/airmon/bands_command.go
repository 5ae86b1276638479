package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/formicidae-tracker/airmon/internal/airmon"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderBandTable() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PPM Range", "Condition", "Indication")

	for _, b := range airmon.Bands() {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(b.Hex())).
			Render("          ")
		t.Row(b.RangeText(), b.Label, swatch)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	})

	return t.Render()
}

type BandsCommand struct {
	stdout io.Writer
}

func (c *BandsCommand) Execute(args []string) error {
	_, err := fmt.Fprintln(c.stdout, renderBandTable())
	return err
}

type ClassifyCommand struct {
	Args struct {
		Values []string `positional-arg-name:"PPM" required:"1"`
	} `positional-args:"yes" required:"yes"`

	stdout io.Writer
}

func (c *ClassifyCommand) Execute(args []string) error {
	for _, v := range c.Args.Values {
		ppm, err := airmon.ParseReading(v)
		if err != nil {
			return err
		}
		b := airmon.Classify(ppm)
		fmt.Fprintf(c.stdout, "%s: %s (%s)\n", ppm, b.Label, b.ColorName)
	}
	return nil
}

func init() {
	_, err := parser.AddCommand("bands",
		"prints the air quality reference table",
		"prints the ppm ranges of each air quality level with its color",
		&BandsCommand{stdout: os.Stdout})
	if err != nil {
		panic(err.Error())
	}

	_, err = parser.AddCommand("classify",
		"classifies ppm values",
		"prints the air quality level of each given ppm value",
		&ClassifyCommand{stdout: os.Stdout})
	if err != nil {
		panic(err.Error())
	}
}
