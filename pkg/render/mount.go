package render

import (
	"errors"
	"fmt"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/vdom"
)

// ErrTargetNotFound is returned by Mount when the container element
// cannot be located.
var ErrTargetNotFound = errors.New("render: mount target not found")

// Mount renders the virtual node and appends the result as a child of
// the element with the given id attribute. This is the one-time entry
// point; later updates go through Patch.
func Mount(doc *dom.Document, v *vdom.VNode, containerID string) error {
	container := doc.GetElementByID(containerID)
	if container == nil {
		return fmt.Errorf("%w: %q", ErrTargetNotFound, containerID)
	}
	container.AppendChild(Render(doc, v))
	return nil
}
