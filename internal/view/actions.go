package view

import (
	"errors"
	"fmt"

	"github.com/ehr/recordview/internal/domain/record"
)

// Target identifies what a user interaction landed on: the card body or
// one of its action buttons.
type Target string

const (
	TargetBody     Target = "body"
	TargetStar     Target = "star"
	TargetView     Target = "view"
	TargetDownload Target = "download"
	TargetEdit     Target = "edit"
	TargetDelete   Target = "delete"
)

var (
	ErrUnknownTarget  = errors.New("unknown interaction target")
	ErrActionHidden   = errors.New("action is not shown for this record")
	ErrRecordNotFound = errors.New("record not in view")
)

// ParseTarget maps a wire name to a Target.
func ParseTarget(s string) (Target, error) {
	switch t := Target(s); t {
	case TargetBody, TargetStar, TargetView, TargetDownload, TargetEdit, TargetDelete:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
}

// Callbacks are the caller's hooks for one record. A nil hook hides the
// matching action button. Hooks take no arguments; the caller binds the
// record in the closure.
type Callbacks struct {
	OnClick  func()
	OnStar   func()
	OnEdit   func()
	OnDelete func()
}

// Action is one button in a record's action row.
type Action struct {
	Target Target `json:"target"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Active bool   `json:"active,omitempty"`
}

// buildActions returns the visible action buttons in display order.
func buildActions(r record.Record, cb Callbacks, tr Translate) []Action {
	var out []Action
	if cb.OnStar != nil {
		a := Action{Target: TargetStar, Icon: "star", Label: tr.text(KeyStar, "收藏")}
		if r.IsStarred {
			a.Active = true
			a.Label = tr.text(KeyUnstar, "取消收藏")
		}
		out = append(out, a)
	}
	out = append(out, Action{Target: TargetView, Icon: "eye", Label: tr.text(KeyViewRecord, "查看")})
	if cb.OnEdit != nil {
		out = append(out, Action{Target: TargetEdit, Icon: "edit", Label: tr.text(KeyEditRecord, "编辑")})
	}
	if r.HasAttachments {
		out = append(out, Action{Target: TargetDownload, Icon: "download", Label: tr.text(KeyDownload, "下载")})
	}
	if cb.OnDelete != nil {
		out = append(out, Action{Target: TargetDelete, Icon: "trash", Label: tr.text(KeyDeleteRecord, "删除")})
	}
	return out
}

func hasAction(actions []Action, t Target) bool {
	for _, a := range actions {
		if a.Target == t {
			return true
		}
	}
	return false
}

// dispatch delivers an interaction. A button press runs only that
// button's hook and never reaches the body click handler.
func dispatch(t Target, actions []Action, cb Callbacks) error {
	if t == TargetBody {
		if cb.OnClick != nil {
			cb.OnClick()
		}
		return nil
	}
	if _, err := ParseTarget(string(t)); err != nil {
		return err
	}
	if !hasAction(actions, t) {
		return fmt.Errorf("%w: %s", ErrActionHidden, t)
	}
	switch t {
	case TargetStar:
		cb.OnStar()
	case TargetEdit:
		cb.OnEdit()
	case TargetDelete:
		cb.OnDelete()
	case TargetView, TargetDownload:
		// placeholders with no behavior yet
	}
	return nil
}
