package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/usecase"
)

// operation is one staged change read from an operations file.
type operation struct {
	Op            string            `json:"op"`
	Type          string            `json:"type"`
	ID            string            `json:"id,omitempty"`
	EntityID      string            `json:"entity_id,omitempty"`
	NewEntityName string            `json:"new_entity_name,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
}

type operationsFile struct {
	Operations []operation `json:"operations"`
}

var errDeleteDeclined = errors.New("deletion declined")

func readOperations(path string, stdin io.Reader) ([]operation, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open operations file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var file operationsFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse operations file: %w", err)
	}
	if len(file.Operations) == 0 {
		return nil, errors.New("operations file contains no operations")
	}
	return file.Operations, nil
}

// applyOperations stages every operation, then saves each touched asset type.
// Asset types already saved as dependents of an earlier save are skipped.
// It returns the number of save batches sent.
func applyOperations(ctx context.Context, ws *usecase.Workspace, ops []operation) (int, error) {
	var touched []*usecase.PositionManager
	seen := make(map[domain.AssetType]struct{})

	for i, op := range ops {
		t, err := domain.ParseAssetType(strings.ToUpper(op.Type))
		if err != nil {
			return 0, fmt.Errorf("operation %d: %w: %q", i+1, err, op.Type)
		}
		m := ws.Manager(t)

		if err := applyOperation(ctx, m, op); err != nil {
			return 0, fmt.Errorf("operation %d (%s %s): %w", i+1, op.Op, t, err)
		}
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			touched = append(touched, m)
		}
	}

	saved := 0
	for _, m := range touched {
		if !m.IsEditing() {
			continue
		}
		if err := m.Save(ctx); err != nil {
			return saved, err
		}
		saved++
	}
	return saved, nil
}

func applyOperation(ctx context.Context, m *usecase.PositionManager, op operation) error {
	switch strings.ToLower(op.Op) {
	case "create":
		form, err := m.OpenCreate(op.EntityID)
		if err != nil {
			return err
		}
		if op.NewEntityName != "" {
			form.SetAll(map[string]string{
				domain.FieldEntityMode:    domain.EntityModeCreate,
				domain.FieldNewEntityName: op.NewEntityName,
			})
		}
		form.SetAll(op.Fields)
		return submit(ctx, m)

	case "edit":
		localID, err := findDraft(m, op.ID)
		if err != nil {
			return err
		}
		form, err := m.OpenEdit(localID)
		if err != nil {
			return err
		}
		if op.EntityID != "" {
			form.Set(domain.FieldEntityID, op.EntityID)
		}
		form.SetAll(op.Fields)
		return submit(ctx, m)

	case "delete":
		localID, err := findDraft(m, op.ID)
		if err != nil {
			return err
		}
		ok, err := m.Delete(ctx, localID)
		if err != nil {
			return err
		}
		if !ok {
			return errDeleteDeclined
		}
		return nil

	default:
		return fmt.Errorf("unknown operation %q", op.Op)
	}
}

// submit turns field errors into a single error.
func submit(ctx context.Context, m *usecase.PositionManager) error {
	fieldErrs, err := m.SubmitForm()
	if err != nil {
		m.CloseForm(ctx)
		return err
	}
	if len(fieldErrs) == 0 {
		return nil
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, f := range fieldErrs.Fields() {
		parts = append(parts, f+": "+fieldErrs[f])
	}
	return fmt.Errorf("invalid form: %s", strings.Join(parts, "; "))
}

// findDraft accepts a backend id or a local draft id.
func findDraft(m *usecase.PositionManager, id string) (string, error) {
	for _, d := range m.Drafts() {
		if d.OriginalID == id || d.LocalID == id {
			return d.LocalID, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrDraftNotFound, id)
}
