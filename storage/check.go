package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"safety-board/grid"
)

var errNull = errors.New("value is null")

// checkLayout decodes a stored layout. Every vector must be present and
// numeric; shape and minimums are then checked by grid.ValidateLayout.
func checkLayout(data []byte) (grid.Layout, error) {
	var fields map[string]json.RawMessage
	if err := decodeObject(data, &fields); err != nil {
		return grid.Layout{}, err
	}

	var l grid.Layout
	for _, id := range grid.VectorIDs {
		raw, ok := fields[id.String()]
		if !ok {
			return grid.Layout{}, fmt.Errorf("missing %s", id)
		}
		var v []float64
		if err := decodeObject(raw, &v); err != nil {
			return grid.Layout{}, fmt.Errorf("%s: %w", id, err)
		}
		l = l.WithVector(id, grid.Vector(v))
	}

	if err := grid.ValidateLayout(l); err != nil {
		return grid.Layout{}, err
	}
	return l, nil
}

// checkSlots decodes a stored slot assignment.
func checkSlots(data []byte) (grid.Assignment, error) {
	var a grid.Assignment
	if err := decodeObject(data, &a); err != nil {
		return grid.Assignment{}, err
	}
	if err := grid.ValidateAssignment(a); err != nil {
		return grid.Assignment{}, err
	}
	return a, nil
}

// decodeObject unmarshals data into out, rejecting a JSON null.
func decodeObject(data []byte, out any) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNull
	}
	return json.Unmarshal(data, out)
}
