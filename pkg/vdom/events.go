package vdom

// On creates an event binding for an arbitrary event name.
// The handler must be callable for the renderer to bind it; see
// pkg/render for the accepted handler signatures.
func On(event string, handler any) Attr {
	return attr("on"+event, handler)
}

// Mouse events

func OnClick(handler any) Attr     { return On("click", handler) }
func OnDblClick(handler any) Attr  { return On("dblclick", handler) }
func OnMouseDown(handler any) Attr { return On("mousedown", handler) }
func OnMouseUp(handler any) Attr   { return On("mouseup", handler) }

// Keyboard events

func OnKeyDown(handler any) Attr { return On("keydown", handler) }
func OnKeyUp(handler any) Attr   { return On("keyup", handler) }

// Form events

func OnInput(handler any) Attr  { return On("input", handler) }
func OnChange(handler any) Attr { return On("change", handler) }
func OnSubmit(handler any) Attr { return On("submit", handler) }
func OnFocus(handler any) Attr  { return On("focus", handler) }
func OnBlur(handler any) Attr   { return On("blur", handler) }
