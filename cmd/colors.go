package cmd

import "github.com/fatih/color"

var colorHighlight = color.New(color.FgHiBlue).SprintFunc()
var colorCmd = color.New(color.Bold).SprintFunc()
