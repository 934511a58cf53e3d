package upgma

import "testing"

func TestNewUnionFind(t *testing.T) {
	uf := NewUnionFind(UnitSizes(5))

	// Each element should be its own root.
	for i := 0; i < 5; i++ {
		if root := uf.Find(i); root != i {
			t.Errorf("Find(%d) = %d, want %d", i, root, i)
		}
	}

	// Each input cluster has size 1.
	for i := 0; i < 5; i++ {
		if s := uf.Size(i); s != 1 {
			t.Errorf("Size(%d) = %d, want 1", i, s)
		}
	}
}

func TestUnionFind_MergeAssignsNextLabel(t *testing.T) {
	uf := NewUnionFind(UnitSizes(4))

	if id := uf.Merge(1, 3); id != 4 {
		t.Fatalf("first Merge returned %d, want 4", id)
	}
	if id := uf.Merge(0, 2); id != 5 {
		t.Fatalf("second Merge returned %d, want 5", id)
	}
	if uf.Find(1) != 4 || uf.Find(3) != 4 {
		t.Error("1 and 3 should resolve to cluster 4")
	}
	if uf.Size(4) != 2 {
		t.Errorf("Size(4) = %d, want 2", uf.Size(4))
	}

	// Merging two merged clusters by any member.
	if id := uf.Merge(3, 0); id != 6 {
		t.Fatalf("third Merge returned %d, want 6", id)
	}
	for i := 0; i < 4; i++ {
		if uf.Find(i) != 6 {
			t.Errorf("Find(%d) = %d, want 6", i, uf.Find(i))
		}
	}
	if uf.Size(0) != 4 {
		t.Errorf("Size = %d, want 4", uf.Size(0))
	}
}

func TestUnionFind_MergeSameSet(t *testing.T) {
	uf := NewUnionFind(UnitSizes(3))
	uf.Merge(0, 1)
	if id := uf.Merge(1, 0); id != -1 {
		t.Errorf("Merge within one set returned %d, want -1", id)
	}
}

func TestUnionFind_PathCompression(t *testing.T) {
	uf := NewUnionFind(UnitSizes(4))

	// Chain: 0 → 4 → 5 → 6.
	uf.Merge(0, 1)
	uf.Merge(4, 2)
	uf.Merge(5, 3)

	root := uf.Find(0)
	if root != 6 {
		t.Fatalf("Find(0) = %d, want 6", root)
	}
	if uf.parent[0] != root {
		t.Errorf("after Find(0), parent[0] = %d, want root %d", uf.parent[0], root)
	}
}

func TestUnionFind_SingleElement(t *testing.T) {
	uf := NewUnionFind(UnitSizes(1))
	if uf.Find(0) != 0 {
		t.Error("Find(0) should be 0")
	}
	if id := uf.Merge(0, 0); id != -1 {
		t.Errorf("Merge(0, 0) = %d, want -1", id)
	}
}

func TestNewUnionFind_InputSizes(t *testing.T) {
	uf := NewUnionFind([]int{3, 1, 2})

	if s := uf.Size(0); s != 3 {
		t.Errorf("Size(0) = %d, want 3", s)
	}
	id := uf.Merge(0, 2)
	if id != 3 {
		t.Fatalf("Merge returned %d, want 3", id)
	}
	if s := uf.Size(2); s != 5 {
		t.Errorf("Size after merge = %d, want 5", s)
	}
	if s := uf.Size(1); s != 1 {
		t.Errorf("Size(1) = %d, want 1", s)
	}
}
