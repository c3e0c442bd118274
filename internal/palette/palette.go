// Package palette holds the ANSI color sets behind the built-in themes.
package palette

import "strconv"

// SGR attribute sequences shared by every palette.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette is a set of ANSI foreground prefixes, one per semantic role.
type Palette struct {
	Text       string
	H1         string
	H2         string
	H3         string
	H4         string
	H5         string
	H6         string
	Emphasis   string
	Strong     string
	CodeBlock  string
	ListMarker string
	LinkText   string
	LinkURL    string
}

func fg(n int) string {
	return "\x1b[38;5;" + strconv.Itoa(n) + "m"
}

func rgb(r, g, b int) string {
	return "\x1b[38;2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(b) + "m"
}

var (
	PaletteDefault = Palette{
		Text:       fg(252),
		H1:         fg(213),
		H2:         fg(177),
		H3:         fg(141),
		H4:         fg(117),
		H5:         fg(110),
		H6:         fg(103),
		Emphasis:   fg(222),
		Strong:     fg(215),
		CodeBlock:  fg(150),
		ListMarker: fg(244),
		LinkText:   fg(81),
		LinkURL:    fg(243),
	}
	PaletteDracula = Palette{
		Text:       rgb(248, 248, 242),
		H1:         rgb(255, 121, 198),
		H2:         rgb(189, 147, 249),
		H3:         rgb(139, 233, 253),
		H4:         rgb(80, 250, 123),
		H5:         rgb(241, 250, 140),
		H6:         rgb(255, 184, 108),
		Emphasis:   rgb(241, 250, 140),
		Strong:     rgb(255, 184, 108),
		CodeBlock:  rgb(80, 250, 123),
		ListMarker: rgb(98, 114, 164),
		LinkText:   rgb(139, 233, 253),
		LinkURL:    rgb(98, 114, 164),
	}
	PaletteNord = Palette{
		Text:       rgb(216, 222, 233),
		H1:         rgb(136, 192, 208),
		H2:         rgb(129, 161, 193),
		H3:         rgb(94, 129, 172),
		H4:         rgb(143, 188, 187),
		H5:         rgb(163, 190, 140),
		H6:         rgb(180, 142, 173),
		Emphasis:   rgb(235, 203, 139),
		Strong:     rgb(208, 135, 112),
		CodeBlock:  rgb(163, 190, 140),
		ListMarker: rgb(76, 86, 106),
		LinkText:   rgb(136, 192, 208),
		LinkURL:    rgb(76, 86, 106),
	}
	PaletteGruvbox = Palette{
		Text:       rgb(235, 219, 178),
		H1:         rgb(251, 73, 52),
		H2:         rgb(254, 128, 25),
		H3:         rgb(250, 189, 47),
		H4:         rgb(184, 187, 38),
		H5:         rgb(142, 192, 124),
		H6:         rgb(131, 165, 152),
		Emphasis:   rgb(211, 134, 155),
		Strong:     rgb(254, 128, 25),
		CodeBlock:  rgb(184, 187, 38),
		ListMarker: rgb(146, 131, 116),
		LinkText:   rgb(131, 165, 152),
		LinkURL:    rgb(146, 131, 116),
	}
	PaletteSolarizedDark = Palette{
		Text:       rgb(147, 161, 161),
		H1:         rgb(203, 75, 22),
		H2:         rgb(181, 137, 0),
		H3:         rgb(133, 153, 0),
		H4:         rgb(42, 161, 152),
		H5:         rgb(38, 139, 210),
		H6:         rgb(108, 113, 196),
		Emphasis:   rgb(211, 54, 130),
		Strong:     rgb(220, 50, 47),
		CodeBlock:  rgb(133, 153, 0),
		ListMarker: rgb(88, 110, 117),
		LinkText:   rgb(38, 139, 210),
		LinkURL:    rgb(88, 110, 117),
	}
	PaletteGithubLight = Palette{
		Text:       rgb(36, 41, 47),
		H1:         rgb(9, 105, 218),
		H2:         rgb(9, 105, 218),
		H3:         rgb(130, 80, 223),
		H4:         rgb(130, 80, 223),
		H5:         rgb(87, 96, 106),
		H6:         rgb(87, 96, 106),
		Emphasis:   rgb(154, 103, 0),
		Strong:     rgb(207, 34, 46),
		CodeBlock:  rgb(17, 99, 41),
		ListMarker: rgb(110, 119, 129),
		LinkText:   rgb(9, 105, 218),
		LinkURL:    rgb(110, 119, 129),
	}
)
