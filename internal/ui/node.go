package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element. It has optional class and id for CSS matching, bounds
// (position and size) set by layout, and optional text.
type Node struct {
	Class  string // e.g. "heading" for .heading
	ID     string // e.g. "heading-1" for #heading-1
	Bounds rl.Rectangle
	Text   string
}

// NewNode creates a node with optional class, id, and text.
func NewNode(class, id, text string) *Node {
	return &Node{Class: class, ID: id, Text: text}
}
