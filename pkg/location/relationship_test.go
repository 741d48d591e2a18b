package location

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		want    Relationship
	}{
		{"child", "park", "park/pond", Descendant},
		{"grandchild", "park", "park/pond/dock", Descendant},
		{"sibling at top level", "park", "school", Lateral},
		{"sibling", "park/pond", "park/gazebo", Lateral},
		{"deep sibling", "shops/bakery/kitchen", "shops/bakery/storage", Lateral},
		{"back to top level", "park/pond/dock", "school", UpToTopLevel},
		{"back to own top level", "park/pond/dock", "park", UpToTopLevel},
		{"cousin", "shops/bakery/kitchen", "shops/market/aisles", UpAndAcross},
		{"other branch deeper", "park/gazebo", "school/cafeteria/kitchen", UpAndAcross},
		{"parent's sibling", "park/pond/dock", "park/gazebo", UpAndAcross},
		{"ancestor", "park/pond/dock", "park/pond", UpAndAcross},
		{"same location", "park/pond", "park/pond", UpAndAcross},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(ParsePath(tt.current), ParsePath(tt.next))
			if got != tt.want {
				t.Errorf("Classify(%q, %q) = %v, want %v", tt.current, tt.next, got, tt.want)
			}
		})
	}
}

func TestClassify_SiblingsAlwaysLateral(t *testing.T) {
	h := MustHierarchy(townNodes()...)
	paths := h.Paths()

	for _, a := range paths {
		for _, b := range paths {
			if a.Equal(b) || !a.Parent().Equal(b.Parent()) {
				continue
			}
			if got := Classify(a, b); got != Lateral {
				t.Errorf("Classify(%q, %q) = %v, want lateral", a, b, got)
			}
		}
	}
}

func TestClassify_DescendantsAlwaysDescendant(t *testing.T) {
	h := MustHierarchy(townNodes()...)
	paths := h.Paths()

	for _, a := range paths {
		for _, b := range paths {
			if !a.IsAncestorOf(b) {
				continue
			}
			if got := Classify(a, b); got != Descendant {
				t.Errorf("Classify(%q, %q) = %v, want descendant", a, b, got)
			}
		}
	}
}

func TestClassify_IsOrderSensitive(t *testing.T) {
	parent, child := ParsePath("park"), ParsePath("park/pond")
	if Classify(parent, child) != Descendant {
		t.Error("parent to child should be descendant")
	}
	if Classify(child, parent) == Descendant {
		t.Error("child to parent must not be descendant")
	}
}

func TestNextStep(t *testing.T) {
	step, ok := NextStep(ParsePath("houses"), ParsePath("houses/mansion/library/study"))
	if !ok || step != "mansion" {
		t.Errorf("NextStep = %q, %v; want mansion, true", step, ok)
	}

	if _, ok := NextStep(ParsePath("houses/mansion"), ParsePath("houses/cottage")); ok {
		t.Error("NextStep should fail for a non-descendant")
	}
}

func TestRelationship_IsUpward(t *testing.T) {
	if Descendant.IsUpward() || Lateral.IsUpward() {
		t.Error("descendant and lateral moves are not upward")
	}
	if !UpToTopLevel.IsUpward() || !UpAndAcross.IsUpward() {
		t.Error("up moves should be upward")
	}
}

func townNodes() []Node {
	return []Node{
		{Name: "park", Children: []Node{
			{Name: "playground", Children: []Node{{Name: "sandbox"}}},
			{Name: "pond", Children: []Node{{Name: "dock"}}},
			{Name: "gazebo"},
		}},
		{Name: "shops", Children: []Node{
			{Name: "bakery", Children: []Node{{Name: "kitchen"}, {Name: "storage"}}},
			{Name: "market", Children: []Node{{Name: "aisles"}, {Name: "stockroom"}}},
			{Name: "cafe"},
		}},
		{Name: "school"},
	}
}
