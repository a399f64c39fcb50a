package engine

import (
	"errors"
	"testing"

	"github.com/tiagokriok/taskflow/internal/domain"
)

func TestUpsertGlobalTag(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Doing": {}}, "Doing")

	got, err := e.UpsertGlobalTag(b, " urgent ", domain.Tag{Label: "ignored", Color: domain.TagRed})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	tag, ok := got.GlobalTags["urgent"]
	if !ok || tag.Label != "urgent" || tag.Color != domain.TagRed {
		t.Fatalf("unexpected tags %+v", got.GlobalTags)
	}
	if len(b.GlobalTags) != 0 {
		t.Fatalf("input board was modified")
	}

	got, err = e.UpsertGlobalTag(got, "urgent", domain.Tag{Color: domain.TagBlue})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got.GlobalTags["urgent"].Color != domain.TagBlue || len(got.GlobalTags) != 1 {
		t.Fatalf("upsert should replace, got %+v", got.GlobalTags)
	}

	if _, err := e.UpsertGlobalTag(b, "", domain.Tag{Color: domain.TagRed}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for blank label, got %v", err)
	}
	if _, err := e.UpsertGlobalTag(b, "x", domain.Tag{Color: "teal"}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for off-palette color, got %v", err)
	}
}

func TestDeleteUnusedGlobalTag(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Doing": {"A"}}, "Doing")
	b.GlobalTags["later"] = domain.Tag{Label: "later", Color: domain.TagGray}

	got, err := e.DeleteGlobalTag(b, "later")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := got.GlobalTags["later"]; ok {
		t.Fatalf("tag still registered")
	}
	again, err := e.DeleteGlobalTag(got, "later")
	if err != nil || len(again.GlobalTags) != 0 {
		t.Fatalf("second delete: %v %+v", err, again.GlobalTags)
	}
}

func TestResolveTagsSkipsOrphans(t *testing.T) {
	b := fixtureBoard(map[string][]string{"Doing": {"A"}}, "Doing")
	b.GlobalTags["bug"] = domain.Tag{Label: "bug", Color: domain.TagRed}
	task := b.Tasks["A"]
	task.Tags = []string{"ghost", "bug"}

	tags := ResolveTags(b, task)
	if len(tags) != 1 || tags[0].Label != "bug" {
		t.Fatalf("unexpected tags %+v", tags)
	}
}
