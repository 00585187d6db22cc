package controller

import (
	m "github.com/mouse-blink/goracle/internal/model"
)

// Message types.
type rerunMsg struct {
	doc m.OutputDocument
	err error
}

type openedMsg struct {
	loc m.Location
	err error
}
