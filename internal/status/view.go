package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a string
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(renderHeader(data))
	b.WriteString("\n\n")

	b.WriteString(renderSources(data))
	b.WriteString("\n\n")

	b.WriteString(renderSettings(data))
	b.WriteString("\n\n")

	b.WriteString(renderClocks(data))

	return b.String()
}

func renderHeader(data *Data) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📂 Current directory: ") + valueStyle.Render(data.CurrentDir) + "\n")
	b.WriteString(titleStyle.Render("📦 Version: ") + valueStyle.Render(data.Version))
	return b.String()
}

func renderSources(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("📝 Configuration sources:") + "\n")

	for i, src := range data.Sources {
		label := src.Kind
		if src.Path != "" {
			label = fmt.Sprintf("%s (%s)", src.Path, src.Kind)
		}
		b.WriteString(fmt.Sprintf("   %d. %s %s\n", i+1, valueStyle.Render(label), successStyle.Render("✓")))
	}

	if !data.GlobalExists && data.GlobalConfigPath != "" {
		b.WriteString("   " + subtleStyle.Render("No global config at "+data.GlobalConfigPath) + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func renderSettings(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("⚙️  Effective settings:") + "\n")

	if data.Config == nil {
		b.WriteString("   " + errorStyle.Render("✗ "+data.ConfigError))
		return b.String()
	}

	cfg := data.Config
	enabled := successStyle.Render("✓ enabled")
	if !cfg.Enabled {
		enabled = errorStyle.Render("✗ disabled")
	}

	rows := [][2]string{
		{"Mode", valueStyle.Render(cfg.Mode)},
		{"Stopwatch", enabled},
		{"Log level", valueStyle.Render(cfg.LogLevel)},
		{"Output", valueStyle.Render(cfg.Output)},
		{"Runs", valueStyle.Render(fmt.Sprintf("%d", cfg.Runs))},
		{"Name", valueStyle.Render(cfg.Name)},
	}
	for _, row := range rows {
		b.WriteString("   " + keyStyle.Render(row[0]+": ") + row[1] + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func renderClocks(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("⏱️  Time sources:") + "\n")

	if data.RealClockOK {
		b.WriteString("   " + keyStyle.Render("real: ") + successStyle.Render("✓ available") + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("real: ") + errorStyle.Render("✗ unavailable") + "\n")
	}

	if data.CPUClockOK {
		b.WriteString("   " + keyStyle.Render("cpu: ") + successStyle.Render("✓ available"))
	} else {
		b.WriteString("   " + keyStyle.Render("cpu: ") + errorStyle.Render("✗ "+data.CPUClockErr))
	}

	return b.String()
}
