package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []struct{ text, color string }{
	{"  ____                                _ _        ", "#818cf8"},
	{" / ___|___  _ __ ___  _ __   ___  ___(_) |_ __ _ ", "#a78bfa"},
	{"| |   / _ \\| '_ ` _ \\| '_ \\ / _ \\/ __| | __/ _` |", "#c084fc"},
	{"| |__| (_) | | | | | | |_) | (_) \\__ \\ | || (_| |", "#e879f9"},
	{" \\____\\___/|_| |_| |_| .__/ \\___/|___/_|\\__\\__,_|", "#f472b6"},
	{"                     |_|                         ", "#fb7185"},
}

// PrintBanner outputs the ASCII art banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
