package buffer_test

import (
	"reflect"
	"testing"

	"github.com/go-mcproto/corejava/buffer"
	"github.com/go-mcproto/corejava/nbt"
)

func TestSlotRoundTrip(t *testing.T) {
	cases := []buffer.Slot{
		buffer.EmptySlot,
		{Present: true, ItemID: 1, Count: 64},
		{Present: true, ItemID: 7, Count: 1, Tag: nbt.Compound{"unbreakable": nbt.Byte(1)}},
	}
	for _, s := range cases {
		b := buffer.NewEmpty()
		if err := b.WriteSlot(s); err != nil {
			t.Fatalf("WriteSlot: %v", err)
		}
		r := buffer.New(b.Bytes())
		got, err := r.ReadSlot()
		if err != nil {
			t.Fatalf("ReadSlot: %v", err)
		}
		if got.Present != s.Present || got.ItemID != s.ItemID || got.Count != s.Count {
			t.Fatalf("got %+v, want %+v", got, s)
		}
	}
}

func TestVillagerRoundTrip(t *testing.T) {
	v := buffer.Villager{Kind: 1, Profession: 2, Level: 3}
	b := buffer.NewEmpty()
	if err := b.WriteVillager(v); err != nil {
		t.Fatalf("WriteVillager: %v", err)
	}
	r := buffer.New(b.Bytes())
	got, err := r.ReadVillager()
	if err != nil {
		t.Fatalf("ReadVillager: %v", err)
	}
	if got != v {
		t.Fatalf("got %+v, want %+v", got, v)
	}
}

func TestModifierRoundTrip(t *testing.T) {
	m := buffer.Modifier{
		UUID:      buffer.UUID{1, 2, 3},
		Amount:    1.5,
		Operation: buffer.ModifierAddPercent,
	}
	b := buffer.NewEmpty()
	if err := b.WriteModifier(m); err != nil {
		t.Fatalf("WriteModifier: %v", err)
	}
	r := buffer.New(b.Bytes())
	got, err := r.ReadModifier()
	if err != nil {
		t.Fatalf("ReadModifier: %v", err)
	}
	if got != m {
		t.Fatalf("got %+v, want %+v", got, m)
	}
}

func TestParticleRoundTrip(t *testing.T) {
	cases := []buffer.Particle{
		{ID: buffer.ParticleBlock, BlockState: 42},
		{ID: buffer.ParticleDust, DustColorAndScale: [4]float32{1, 0, 0, 1}},
		{ID: buffer.ParticleItem, Item: buffer.Slot{Present: true, ItemID: 5, Count: 1}},
		{ID: 1}, // no extra payload
	}
	for _, p := range cases {
		b := buffer.NewEmpty()
		if err := b.WriteParticle(p); err != nil {
			t.Fatalf("WriteParticle: %v", err)
		}
		r := buffer.New(b.Bytes())
		got, err := r.ReadParticle()
		if err != nil {
			t.Fatalf("ReadParticle: %v", err)
		}
		if got.ID != p.ID {
			t.Fatalf("got id %d, want %d", got.ID, p.ID)
		}
	}
}

func TestEntityMetadataRoundTrip(t *testing.T) {
	entries := []buffer.MetadataEntry{
		{Index: 0, Type: buffer.MetaByte, Value: int8(1)},
		{Index: 1, Type: buffer.MetaFloat, Value: float32(0.5)},
		{Index: 2, Type: buffer.MetaString, Value: "hello"},
		{Index: 3, Type: buffer.MetaBoolean, Value: true},
	}

	b := buffer.NewEmpty()
	if err := b.WriteEntityMetadata(entries); err != nil {
		t.Fatalf("WriteEntityMetadata: %v", err)
	}
	r := buffer.New(b.Bytes())
	got, err := r.ReadEntityMetadata()
	if err != nil {
		t.Fatalf("ReadEntityMetadata: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	for i, e := range entries {
		if got[i].Index != e.Index || got[i].Type != e.Type {
			t.Fatalf("entry %d: got %+v, want %+v", i, got[i], e)
		}
		if !reflect.DeepEqual(got[i].Value, e.Value) {
			t.Fatalf("entry %d value: got %v (%T), want %v (%T)", i, got[i].Value, got[i].Value, e.Value, e.Value)
		}
	}
}

func TestNodeRoundTrip(t *testing.T) {
	cases := []buffer.Node{
		{Type: buffer.NodeRoot, Children: []int32{1, 2}},
		{Type: buffer.NodeLiteral, Name: "give", Children: []int32{2}, Executable: true},
		{
			Type:   buffer.NodeArgument,
			Name:   "amount",
			Parser: "brigadier:integer",
			Properties: buffer.NodePropsNumber{
				Range: buffer.NumberRange{HasMin: true, Min: 1, HasMax: true, Max: 64},
			},
		},
		{
			Type:       buffer.NodeArgument,
			Name:       "target",
			Parser:     "minecraft:entity",
			Properties: buffer.NodePropsEntity{SingleTarget: true, PlayersOnly: false},
		},
	}

	for _, n := range cases {
		b := buffer.NewEmpty()
		if err := b.WriteNode(n); err != nil {
			t.Fatalf("WriteNode(%+v): %v", n, err)
		}
		r := buffer.New(b.Bytes())
		got, err := r.ReadNode()
		if err != nil {
			t.Fatalf("ReadNode: %v", err)
		}
		if got.Type != n.Type || got.Name != n.Name || got.Parser != n.Parser || got.Executable != n.Executable {
			t.Fatalf("got %+v, want %+v", got, n)
		}
		if !reflect.DeepEqual(got.Children, n.Children) {
			t.Fatalf("children: got %v, want %v", got.Children, n.Children)
		}
	}
}

func TestRecipeRoundTrip(t *testing.T) {
	cases := []buffer.Recipe{
		{
			ID:   "minecraft:stick",
			Type: "minecraft:crafting_shapeless",
			Kind: buffer.RecipeShapeless,
			Data: buffer.RecipeShapelessData{
				Ingredients: []buffer.Ingredient{
					{{Present: true, ItemID: 1, Count: 1}},
				},
				Result: buffer.Slot{Present: true, ItemID: 2, Count: 4},
			},
		},
		{
			ID:   "minecraft:iron_ingot_from_smelting",
			Type: "minecraft:smelting",
			Kind: buffer.RecipeCooking,
			Data: buffer.RecipeCookingData{
				Ingredient:   buffer.Ingredient{{Present: true, ItemID: 3, Count: 1}},
				Result:       buffer.Slot{Present: true, ItemID: 4, Count: 1},
				Experience:   0.7,
				CookingTicks: 200,
			},
		},
		{
			ID:   "minecraft:furnace",
			Type: "minecraft:crafting_special_armordye",
			Kind: buffer.RecipeUnshaped,
		},
	}

	for _, rec := range cases {
		b := buffer.NewEmpty()
		if err := b.WriteRecipe(rec); err != nil {
			t.Fatalf("WriteRecipe(%s): %v", rec.ID, err)
		}
		r := buffer.New(b.Bytes())
		got, err := r.ReadRecipe()
		if err != nil {
			t.Fatalf("ReadRecipe: %v", err)
		}
		if got.ID != rec.ID || got.Type != rec.Type || got.Kind != rec.Kind {
			t.Fatalf("got %+v, want %+v", got, rec)
		}
	}
}
