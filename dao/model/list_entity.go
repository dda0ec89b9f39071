package model

import (
	"errors"
	"fmt"
	"lnodelist/list"
	"lnodelist/value"
	"time"
)

var (
	ErrNotPersistable = errors.New("value cannot be persisted")
	ErrNotFound       = errors.New("list is not exists")
	ErrEmptyName      = errors.New("list name cannot be empty")
)

// Entry is one stored list element. Only primitive kinds can be stored.
type Entry struct {
	Kind  string  `json:"kind" bson:"kind" structs:"kind"`
	Int   int64   `json:"int,omitempty" bson:"int,omitempty" structs:"int,omitempty"`
	Float float64 `json:"float,omitempty" bson:"float,omitempty" structs:"float,omitempty"`
	Str   string  `json:"str,omitempty" bson:"str,omitempty" structs:"str,omitempty"`
	Bool  bool    `json:"bool,omitempty" bson:"bool,omitempty" structs:"bool,omitempty"`
}

type ListEntity struct {
	Name      string    `json:"name" bson:"name" structs:"name"`
	Entries   []Entry   `json:"entries" bson:"entries" structs:"entries"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt" structs:"updatedAt"`
}

const (
	Name      = "name"
	Entries   = "entries"
	UpdatedAt = "updatedAt"
)

func ToEntry(v any) (Entry, error) {
	switch x := v.(type) {
	case nil:
		return Entry{Kind: value.Nil.String()}, nil
	case int64:
		return Entry{Kind: value.Integer.String(), Int: x}, nil
	case float64:
		return Entry{Kind: value.Float.String(), Float: x}, nil
	case string:
		return Entry{Kind: value.String.String(), Str: x}, nil
	case bool:
		return Entry{Kind: value.Boolean.String(), Bool: x}, nil
	default:
		return Entry{}, fmt.Errorf("%w: %T", ErrNotPersistable, v)
	}
}

func (e Entry) Value() (any, error) {
	switch e.Kind {
	case value.Nil.String():
		return nil, nil
	case value.Integer.String():
		return e.Int, nil
	case value.Float.String():
		return e.Float, nil
	case value.String.String():
		return e.Str, nil
	case value.Boolean.String():
		return e.Bool, nil
	default:
		return nil, fmt.Errorf("unknown entry kind %q", e.Kind)
	}
}

// ToEntries snapshots l. It fails on the first value with no stored form.
func ToEntries(l *list.List) ([]Entry, error) {
	entries := make([]Entry, 0, l.Size())
	var err error
	l.ForEach(func(val any, idx int) {
		if err != nil {
			return
		}
		var e Entry
		e, err = ToEntry(val)
		if err != nil {
			err = fmt.Errorf("element %d: %w", idx, err)
			return
		}
		entries = append(entries, e)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func FromEntries(entries []Entry, opts ...list.Option) (*list.List, error) {
	l := list.New(opts...)
	for i, e := range entries {
		v, err := e.Value()
		if err != nil {
			l.Clear()
			return nil, fmt.Errorf("element %d: %w", i+1, err)
		}
		l.Push(v)
	}
	return l, nil
}
