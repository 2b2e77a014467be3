package mansion

import (
	"math/rand"
	"slices"
	"testing"

	"example.com/detective/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nineRoomLayout is the smaller mansion: Hall, two wings, a garden and a bathroom.
func nineRoomLayout() []config.RoomSpec {
	return []config.RoomSpec{
		{Name: "Hall", Left: "Cozinha", Right: "Biblioteca"},
		{Name: "Cozinha", Left: "Quarto", Right: "Escritorio"},
		{Name: "Biblioteca", Left: "SalaJantar", Right: "SalaEstar"},
		{Name: "Quarto"},
		{Name: "Escritorio"},
		{Name: "SalaJantar", Left: "Jardim"},
		{Name: "SalaEstar", Right: "Banheiro"},
		{Name: "Jardim"},
		{Name: "Banheiro"},
	}
}

func walkPath(t *testing.T, from *Room, dirs ...Direction) (*Room, error) {
	t.Helper()
	current := from
	for _, d := range dirs {
		next, err := current.Next(d)
		if err != nil {
			return current, err
		}
		current = next
	}
	return current, nil
}

func TestBuild_NineRoomNavigation(t *testing.T) {
	// GIVEN the nine-room mansion
	root, rooms, err := Build(nineRoomLayout())
	require.NoError(t, err)
	require.Len(t, rooms, 9)
	assert.Equal(t, "Hall", root.Name)

	t.Run("left, left reaches Quarto", func(t *testing.T) {
		room, err := walkPath(t, root, Left, Left)
		require.NoError(t, err)
		assert.Equal(t, "Quarto", room.Name)
	})

	t.Run("right, right from Biblioteca reaches Banheiro", func(t *testing.T) {
		biblioteca, err := root.Next(Right)
		require.NoError(t, err)
		room, err := walkPath(t, biblioteca, Right, Right)
		require.NoError(t, err)
		assert.Equal(t, "Banheiro", room.Name)

		room, err = walkPath(t, root, Right, Right)
		require.NoError(t, err)
		assert.Equal(t, "SalaEstar", room.Name)
	})

	t.Run("left from Quarto is a dead end and the cursor stays", func(t *testing.T) {
		room, err := walkPath(t, root, Left, Left, Left)
		assert.ErrorIs(t, err, ErrNoRoom)
		assert.Equal(t, "Quarto", room.Name)
	})

	t.Run("SalaEstar has only a right door", func(t *testing.T) {
		salaEstar, err := walkPath(t, root, Right, Right)
		require.NoError(t, err)
		assert.Same(t, rooms[6], salaEstar)
		_, err = salaEstar.Next(Left)
		assert.ErrorIs(t, err, ErrNoRoom)
		next, err := salaEstar.Next(Right)
		require.NoError(t, err)
		assert.Equal(t, "Banheiro", next.Name)
	})
}

func TestNavigate_NilCursor(t *testing.T) {
	_, err := Navigate(nil, Left)
	assert.ErrorIs(t, err, ErrNoRoom)
}

func TestWalk_PreOrder(t *testing.T) {
	root, _, err := Build(nineRoomLayout())
	require.NoError(t, err)

	var names []string
	for room := range root.Walk() {
		names = append(names, room.Name)
	}
	assert.Equal(t, []string{"Hall", "Cozinha", "Quarto", "Escritorio", "Biblioteca", "SalaJantar", "Jardim", "SalaEstar", "Banheiro"}, names)

	t.Run("it stops early when asked", func(t *testing.T) {
		var first []string
		for room := range root.Walk() {
			first = append(first, room.Name)
			if len(first) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"Hall", "Cozinha"}, first)
	})
}

func TestBuild_DefaultScenario(t *testing.T) {
	root, rooms, err := Build(config.Default().Rooms)
	require.NoError(t, err)
	assert.Len(t, rooms, 12)

	estufa, err := walkPath(t, root, Right, Left, Left, Left)
	require.NoError(t, err)
	assert.Equal(t, "Estufa", estufa.Name)
	assert.True(t, estufa.IsLeaf())
}

func TestBuild_KeepsLayoutClues(t *testing.T) {
	layout := nineRoomLayout()
	layout[3].Clue = "Pegadas."
	root, _, err := Build(layout)
	require.NoError(t, err)

	quarto, err := walkPath(t, root, Left, Left)
	require.NoError(t, err)
	assert.True(t, quarto.HasClue())
	assert.Equal(t, "Pegadas.", quarto.Clue)
}

func TestBuild_InvalidLayouts(t *testing.T) {
	cases := map[string][]config.RoomSpec{
		"empty":        nil,
		"nameless":     {{Name: ""}},
		"duplicate":    {{Name: "A", Left: "B"}, {Name: "B"}, {Name: "B"}},
		"unknown room": {{Name: "A", Left: "Z"}},
		"back to root": {{Name: "A", Left: "B"}, {Name: "B", Right: "A"}},
		"two parents":  {{Name: "A", Left: "B", Right: "C"}, {Name: "B", Left: "D"}, {Name: "C", Right: "D"}, {Name: "D"}},
		"detached":     {{Name: "A"}, {Name: "B", Left: "C"}, {Name: "C", Left: "B"}},
	}
	for name, layout := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Build(layout)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestDistributeClues(t *testing.T) {
	clues := []string{"a", "b", "c"}

	t.Run("100 percent fills every room from the table", func(t *testing.T) {
		_, rooms, err := Build(nineRoomLayout())
		require.NoError(t, err)
		DistributeClues(rooms, clues, 100, rand.New(rand.NewSource(7)))
		for _, room := range rooms {
			assert.True(t, slices.Contains(clues, room.Clue), "room %s got %q", room.Name, room.Clue)
		}
	})

	t.Run("0 percent clears every room", func(t *testing.T) {
		layout := nineRoomLayout()
		layout[0].Clue = "preset"
		_, rooms, err := Build(layout)
		require.NoError(t, err)
		DistributeClues(rooms, clues, 0, rand.New(rand.NewSource(7)))
		for _, room := range rooms {
			assert.False(t, room.HasClue(), room.Name)
		}
	})

	t.Run("the same seed places the same clues", func(t *testing.T) {
		_, a, _ := Build(nineRoomLayout())
		_, b, _ := Build(nineRoomLayout())
		DistributeClues(a, clues, 50, rand.New(rand.NewSource(42)))
		DistributeClues(b, clues, 50, rand.New(rand.NewSource(42)))
		for i := range a {
			assert.Equal(t, a[i].Clue, b[i].Clue)
		}
	})
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "Direction(5)", Direction(5).String())
}

func TestParseDirection(t *testing.T) {
	for input, want := range map[string]Direction{"l": Left, "Left": Left, "r": Right, "RIGHT": Right} {
		d, ok := ParseDirection(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, d, input)
	}
	for _, input := range []string{"", "q", "x", "1"} {
		_, ok := ParseDirection(input)
		assert.False(t, ok, input)
	}
}
