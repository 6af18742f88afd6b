package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"trailkit/nav"
	"trailkit/theme"
)

func main() {
	th := theme.Default()
	if len(os.Args) > 2 {
		fmt.Println("Usage: trailui [THEME_FILE]")
		os.Exit(1)
	}
	if len(os.Args) == 2 {
		loaded, err := theme.Load(os.Args[1])
		if err != nil {
			fmt.Printf("Error loading theme: %v\n", err)
			os.Exit(1)
		}
		th = loaded
	}

	root, err := nav.ParseTree(demoTree)
	if err != nil {
		fmt.Printf("Error parsing demo tree: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewModel(root, th), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// demoTree is the sample hierarchy browsed by the breadcrumb.
var demoTree = []byte(`{
	"label": "Home",
	"icon": "house",
	"children": [
		{
			"label": "Documents",
			"icon": "folder",
			"children": [
				{
					"label": "Projects",
					"icon": "folder",
					"children": [
						{"label": "GPUI Component", "icon": "file"},
						{"label": "Trailkit", "icon": "file"}
					]
				},
				{"label": "Invoices", "icon": "folder"}
			]
		},
		{
			"label": "Pictures",
			"icon": "folder",
			"children": [
				{"label": "Vacation", "icon": "folder"}
			]
		},
		{"label": "Archive", "icon": "folder", "disabled": true}
	]
}`)
