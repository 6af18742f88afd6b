// Command tvrate is a mouse-driven tview front-end for the trailkit
// widgets: click a breadcrumb crumb to navigate, click a rating position
// to rate.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"trailkit/nav"
	"trailkit/rating"
)

func main() {
	root, err := nav.ParseTree(demoTree)
	if err != nil {
		fmt.Printf("Error parsing demo tree: %v\n", err)
		os.Exit(1)
	}

	a := NewApp(root)
	if err := a.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// App wires the widgets into a tview layout.
type App struct {
	app       *tview.Application
	navigator *nav.Navigator

	crumbs   *tview.TextView
	stars    *tview.TextView
	children *tview.List
	status   *tview.TextView

	// Authoritative rating state, re-rendered after every change.
	value     float64
	precision bool
	readonly  bool

	// Click spans recorded on the last draw.
	crumbSpans  []span
	ratingSpans []span
}

func NewApp(root *nav.Node) *App {
	a := &App{
		app:       tview.NewApplication(),
		navigator: nav.NewNavigator(root),
		value:     3.5,
		precision: true,
	}
	a.buildUI()
	return a
}

// ratingModel rebuilds the rating widget from app state.
func (a *App) ratingModel() *rating.Model {
	m := rating.New().SetValue(a.value)
	m.Precision = a.precision
	m.Readonly = a.readonly
	m.ShowText = true
	m.OnChange = func(v float64) {
		a.value = v
		a.redraw()
	}
	return m
}

func (a *App) buildUI() {
	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetText("[yellow::b]tvrate[-:-:-] | click crumbs to navigate, stars to rate | p:precision r:readonly q:quit")

	a.crumbs = tview.NewTextView().SetDynamicColors(true)
	a.crumbs.SetBorder(true).SetTitle("Breadcrumb").SetTitleAlign(tview.AlignLeft)
	a.crumbs.SetMouseCapture(a.crumbClick)

	a.children = tview.NewList().ShowSecondaryText(false)
	a.children.SetBorder(true).SetTitle("Children").SetTitleAlign(tview.AlignLeft)

	a.stars = tview.NewTextView().SetDynamicColors(true)
	a.stars.SetBorder(true).SetTitle("Rating").SetTitleAlign(tview.AlignLeft)
	a.stars.SetMouseCapture(a.ratingClick)

	grid := tview.NewGrid().
		SetRows(1, 3, 0, 3).
		SetColumns(0).
		AddItem(a.status, 0, 0, 1, 1, 0, 0, false).
		AddItem(a.crumbs, 1, 0, 1, 1, 0, 0, false).
		AddItem(a.children, 2, 0, 1, 1, 0, 0, true).
		AddItem(a.stars, 3, 0, 1, 1, 0, 0, false)

	grid.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			a.app.Stop()
			return nil
		case 'p':
			a.precision = !a.precision
			a.redraw()
			return nil
		case 'r':
			a.readonly = !a.readonly
			a.redraw()
			return nil
		}
		return event
	})

	a.app.SetRoot(grid, true).EnableMouse(true)
	a.redraw()
}

// redraw re-renders every widget from current state.
func (a *App) redraw() {
	a.drawCrumbs()
	a.drawRating()
	a.drawChildren()
}

func (a *App) drawChildren() {
	a.children.Clear()
	cur := a.navigator.Current()
	for _, child := range cur.Children {
		child := child
		label := child.Label
		if child.Disabled {
			a.children.AddItem("[gray]"+label+" (disabled)[-]", "", 0, nil)
			continue
		}
		a.children.AddItem(label, "", 0, func() {
			if err := a.navigator.Descend(child.Label); err == nil {
				a.redraw()
			}
		})
	}
	if len(cur.Children) == 0 {
		a.children.AddItem("[gray](empty)[-]", "", 0, nil)
	}
}

// Run starts the application loop.
func (a *App) Run() error {
	return a.app.Run()
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
						{"label": "GPUI Component", "icon": "file"}
					]
				}
			]
		},
		{
			"label": "Music",
			"icon": "folder",
			"children": [
				{"label": "Albums", "icon": "folder"}
			]
		}
	]
}`)
