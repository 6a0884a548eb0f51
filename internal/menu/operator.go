package menu

import (
	"errors"

	"custom-meshes/internal/host"

	"pkt.systems/pslog"
)

// ErrMissingPath is returned when the import operator runs without an asset path.
var ErrMissingPath = errors.New("menu: import operator: missing " + PathProp)

// ImportOperator loads every object stored in an asset file and links it into the active collection.
type ImportOperator struct {
	log pslog.Logger
}

func NewImportOperator(log pslog.Logger) *ImportOperator {
	return &ImportOperator{log: log}
}

func (o *ImportOperator) ID() string    { return OperatorID }
func (o *ImportOperator) Label() string { return OperatorLabel }

// Execute imports props[PathProp]. Load and link errors from the host are returned as they are and
// leave the collection as it was. Nil objects in the loaded set are skipped.
func (o *ImportOperator) Execute(ctx *host.Context, props host.Props) (host.Result, error) {
	path := props[PathProp]
	if path == "" {
		return host.Cancelled, ErrMissingPath
	}
	objects, err := ctx.Library.LoadObjects(path)
	if err != nil {
		o.log.Warn("import failed", "path", path, "err", err)
		return host.Cancelled, err
	}
	linked := make([]host.Object, 0, len(objects))
	for _, obj := range objects {
		if obj == nil {
			continue
		}
		if err := ctx.Collection.Link(obj); err != nil {
			o.log.Warn("import failed", "path", path, "object", obj.Name(), "err", err)
			o.unlink(ctx.Collection, linked)
			return host.Cancelled, err
		}
		linked = append(linked, obj)
	}
	o.log.Info("imported objects", "path", path, "linked", len(linked))
	return host.Finished, nil
}

// unlink rolls back a partial import, newest first.
func (o *ImportOperator) unlink(c host.Collection, objects []host.Object) {
	for i := len(objects) - 1; i >= 0; i-- {
		if err := c.Unlink(objects[i]); err != nil {
			o.log.Error("rollback unlink", "object", objects[i].Name(), "err", err)
		}
	}
}
