package export

import "fmt"

// Built-in exporters for common terminal emulators. Bodies are ordinary
// template source; they go through Parse like user-supplied ones.

const alacrittyBody = `# {NAME}

[colors.primary]
background = "#{HEX0}"
foreground = "#{HEX15}"

[colors.cursor]
text = "#{HEX0}"
cursor = "#{ACCHEX}"

[colors.selection]
text = "#{HEX0}"
background = "#{SELECTIONHEX}"

[colors.normal]
black = "#{HEX0}"
red = "#{HEX1}"
green = "#{HEX2}"
yellow = "#{HEX3}"
blue = "#{HEX4}"
magenta = "#{HEX5}"
cyan = "#{HEX6}"
white = "#{HEX7}"

[colors.bright]
black = "#{HEX8}"
red = "#{HEX9}"
green = "#{HEX10}"
yellow = "#{HEX11}"
blue = "#{HEX12}"
magenta = "#{HEX13}"
cyan = "#{HEX14}"
white = "#{HEX15}"
`

const kittyBody = `# {NAME}
foreground #{HEX15}
background #{HEX0}
cursor #{ACCHEX}
selection_foreground #{HEX0}
selection_background #{HEX7}

color0 #{HEX0}
color1 #{HEX1}
color2 #{HEX2}
color3 #{HEX3}
color4 #{HEX4}
color5 #{HEX5}
color6 #{HEX6}
color7 #{HEX7}
color8 #{HEX8}
color9 #{HEX9}
color10 #{HEX10}
color11 #{HEX11}
color12 #{HEX12}
color13 #{HEX13}
color14 #{HEX14}
color15 #{HEX15}
`

const xresourcesBody = `! {NAME}
*.foreground: #{HEX15}
*.background: #{HEX0}
*.cursorColor: #{ACCHEX}

*.color0: #{HEX0}
*.color1: #{HEX1}
*.color2: #{HEX2}
*.color3: #{HEX3}
*.color4: #{HEX4}
*.color5: #{HEX5}
*.color6: #{HEX6}
*.color7: #{HEX7}
*.color8: #{HEX8}
*.color9: #{HEX9}
*.color10: #{HEX10}
*.color11: #{HEX11}
*.color12: #{HEX12}
*.color13: #{HEX13}
*.color14: #{HEX14}
*.color15: #{HEX15}
`

const footBody = `# {NAME}
[colors]
foreground={HEX15}
background={HEX0}
regular0={HEX0}
regular1={HEX1}
regular2={HEX2}
regular3={HEX3}
regular4={HEX4}
regular5={HEX5}
regular6={HEX6}
regular7={HEX7}
bright0={HEX8}
bright1={HEX9}
bright2={HEX10}
bright3={HEX11}
bright4={HEX12}
bright5={HEX13}
bright6={HEX14}
bright7={HEX15}

[cursor]
color={HEX0} {ACCHEX}
`

func builtinTemplates() []*Template {
	specs := []struct {
		name   string
		path   string
		body   string
		extras []string
	}{
		{name: "alacritty", path: "~/.config/alacritty/colors.toml", body: alacrittyBody, extras: []string{"SELECTION"}},
		{name: "kitty", path: "~/.config/kitty/theme.conf", body: kittyBody},
		{name: "xresources", path: "~/.Xresources", body: xresourcesBody},
		{name: "foot", path: "~/.config/foot/theme.ini", body: footBody},
	}

	out := make([]*Template, 0, len(specs))
	for _, s := range specs {
		t, err := Parse(s.name, s.path, s.body, s.extras)
		if err != nil {
			panic(fmt.Sprintf("export: builtin %q: %v", s.name, err))
		}
		out = append(out, t)
	}
	return out
}
