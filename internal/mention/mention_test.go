package mention

import (
	"testing"

	"dooo/internal/model"
)

func roster() []model.User {
	return []model.User{
		{ID: "u1", Name: "Alice", OrganizationID: "org1"},
		{ID: "u2", Name: "Alicia", OrganizationID: "org1"},
		{ID: "u3", Name: "Bob", OrganizationID: "org1"},
		{ID: "u4", Name: "Alan", OrganizationID: "org2"},
	}
}

func self() model.User {
	return model.User{ID: "me", Name: "Mallory", OrganizationID: "org1"}
}

func TestTrailing(t *testing.T) {
	if tok, ok := Trailing("ship the release @ali"); !ok || tok != "ali" {
		t.Fatalf("expected trailing token ali, got %q ok=%v", tok, ok)
	}
	if tok, ok := Trailing("review @"); !ok || tok != "" {
		t.Fatalf("bare @ should yield empty token, got %q ok=%v", tok, ok)
	}
	if _, ok := Trailing("no mention here"); ok {
		t.Fatal("expected no trailing mention")
	}
	if _, ok := Trailing("@bob did this already"); ok {
		t.Fatal("mid-sentence mention is not a trailing token")
	}
}

func TestAll(t *testing.T) {
	names := All("ping @Alice and @Bob about @Dooo")
	want := []string{"Alice", "Bob", "Dooo"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("mention %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestCandidatesMultiMatch(t *testing.T) {
	cands := Candidates("ali", roster(), self())
	if len(cands) != 2 || cands[0].Name != "Alice" || cands[1].Name != "Alicia" {
		t.Fatalf("token ali should match [Alice Alicia], got %v", cands)
	}
}

func TestCandidatesExcludesSelfAndForeignOrg(t *testing.T) {
	me := roster()[0] // Alice matching against herself
	cands := Candidates("al", roster(), me)
	for _, c := range cands {
		if c.ID == me.ID {
			t.Fatal("actor must not be offered as a candidate")
		}
		if c.ID == "u4" {
			t.Fatal("users outside the actor's organization must be excluded")
		}
	}
}

func TestCandidatesInjectsAssistant(t *testing.T) {
	cands := Candidates("doo", roster(), self())
	if len(cands) != 1 || cands[0].ID != AssistantID {
		t.Fatalf("expected only the assistant for token doo, got %v", cands)
	}

	// Empty token: everyone plus the assistant.
	all := Candidates("", roster(), self())
	found := false
	for _, c := range all {
		if c.ID == AssistantID {
			found = true
		}
	}
	if !found {
		t.Fatal("assistant should join the pool on an empty token")
	}
}

func TestResolvePolicy(t *testing.T) {
	if res := Resolve("ali", roster(), self()); res.Kind != Dropdown || len(res.Candidates) != 2 {
		t.Fatalf("two candidates must resolve to a dropdown, got %+v", res)
	}

	res := Resolve("alici", roster(), self())
	if res.Kind != Hint || res.Remaining != "a" {
		t.Fatalf("single candidate should hint remaining letters, got %+v", res)
	}

	// Full-length token still hints, with zero remaining letters.
	if res := Resolve("alicia", roster(), self()); res.Kind != Hint || res.Remaining != "" {
		t.Fatalf("expected zero-length hint, got %+v", res)
	}

	if res := Resolve("zzz", roster(), self()); res.Kind != None {
		t.Fatalf("no candidate should resolve to none, got %+v", res)
	}
}

func TestAcceptRemovesTrailingToken(t *testing.T) {
	text, ok := Accept("get the logs @ali")
	if !ok || text != "get the logs " {
		t.Fatalf("expected token stripped, got %q ok=%v", text, ok)
	}
	if _, ok := Accept("nothing to accept"); ok {
		t.Fatal("accept without a trailing mention should be a no-op")
	}
}

func TestExtractLinks(t *testing.T) {
	clean, links := ExtractLinks("read https://example.com/doc before standup")
	if clean != "read  before standup" && clean != "read before standup" {
		t.Fatalf("unexpected cleaned text %q", clean)
	}
	if len(links) != 1 || links[0] != "https://example.com/doc" {
		t.Fatalf("unexpected links %v", links)
	}

	clean, links = ExtractLinks("no links here")
	if clean != "no links here" || links != nil {
		t.Fatalf("text without urls must pass through, got %q %v", clean, links)
	}
}
