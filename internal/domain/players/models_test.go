package players

import (
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"FullName", "fullName"},
		{"IsActive", "isActive"},
		{"TeamID", "teamId"},
		{"Position", "position,omitempty"},
		{"HeadshotURL", "headshotUrl"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestHeadshotURL(t *testing.T) {
	want := "https://cdn.nba.com/headshots/nba/latest/1040x760/2544.png"
	if got := HeadshotURL(2544); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestTeamLogoURL(t *testing.T) {
	want := "https://cdn.nba.com/logos/nba/1610612747/global/L/logo.svg"
	if got := TeamLogoURL(1610612747); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got := TeamLogoURL(0); got != "" {
		t.Fatalf("expected empty logo for no team, got %s", got)
	}
}
