package goshape_test

import (
	"context"
	"testing"

	goshape "github.com/reoring/goshape"
)

// minimalSchema is a stub Schema that emits a single fixed field.
type minimalSchema struct{}

func (minimalSchema) Dump(ctx context.Context, v string) (*goshape.Document, error) {
	if v == "" {
		return nil, goshape.Issues{goshape.Issue{Code: goshape.CodeMissingAttribute, Path: "/value", Message: "empty source"}}
	}
	d := goshape.NewDocument()
	d.Set("value", v)
	return d, nil
}
func (s minimalSchema) DumpMany(ctx context.Context, vs []string) ([]*goshape.Document, error) {
	out := make([]*goshape.Document, 0, len(vs))
	for _, v := range vs {
		d, err := s.Dump(ctx, v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
func (s minimalSchema) DumpAny(ctx context.Context, v any) (*goshape.Document, error) {
	sv, _ := v.(string)
	return s.Dump(ctx, sv)
}
func (minimalSchema) Fields() []string { return []string{"value"} }
func (minimalSchema) Name() string     { return "minimal" }

func TestDump_DelegatesToSchema(t *testing.T) {
	s := minimalSchema{}
	doc, err := goshape.Dump(context.Background(), goshape.Schema[string](s), "x")
	if err != nil {
		t.Fatalf("dump err: %v", err)
	}
	if v, _ := doc.Get("value"); v != "x" {
		t.Fatalf("unexpected document: %v", v)
	}

	_, err = goshape.Dump(context.Background(), goshape.Schema[string](s), "")
	if !goshape.HasCode(err, goshape.CodeMissingAttribute) {
		t.Fatalf("expected stub error, got %v", err)
	}
}

func TestDumpMany_CollectFlagReachesSchema(t *testing.T) {
	ctx := goshape.WithCollect(context.Background(), true)
	if !goshape.IsCollect(ctx) {
		t.Fatalf("collect flag not carried by context")
	}
	if goshape.IsCollect(context.Background()) {
		t.Fatalf("collect must default to false")
	}
}

func TestEnterNode_DetectsReentry(t *testing.T) {
	s := minimalSchema{}
	obj := &struct{ x int }{}

	ctx, leave, err := goshape.EnterNode(context.Background(), s, obj)
	if err != nil {
		t.Fatalf("first enter err: %v", err)
	}
	// Re-entering the same pair on the active path is the cycle signal.
	if _, _, err := goshape.EnterNode(ctx, s, obj); !goshape.HasCode(err, goshape.CodeCyclicReference) {
		t.Fatalf("expected cyclic_reference, got %v", err)
	}
	leave()
	// After leaving, the pair may be entered again (sibling branches).
	if _, leave2, err := goshape.EnterNode(ctx, s, obj); err != nil {
		t.Fatalf("re-enter after leave err: %v", err)
	} else {
		leave2()
	}
}

func TestEnterNode_DistinctObjectsDoNotCollide(t *testing.T) {
	s := minimalSchema{}
	o1 := &struct{ x int }{}
	o2 := &struct{ x int }{}

	ctx, leave1, err := goshape.EnterNode(context.Background(), s, o1)
	if err != nil {
		t.Fatalf("enter o1 err: %v", err)
	}
	defer leave1()
	if _, leave2, err := goshape.EnterNode(ctx, s, o2); err != nil {
		t.Fatalf("enter o2 err: %v", err)
	} else {
		leave2()
	}
}

func TestEnterNode_UntrackableObjectIsIgnored(t *testing.T) {
	s := minimalSchema{}
	ctx, leave, err := goshape.EnterNode(context.Background(), s, []string{"no", "identity"})
	if err != nil {
		t.Fatalf("enter err: %v", err)
	}
	leave()
	if _, leave2, err := goshape.EnterNode(ctx, s, nil); err != nil {
		t.Fatalf("nil object enter err: %v", err)
	} else {
		leave2()
	}
}
