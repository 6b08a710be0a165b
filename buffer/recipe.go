package buffer

// Ingredient is a recipe ingredient slot: a list of item stacks, any one of
// which satisfies the ingredient (the multi-item "tag" match).
type Ingredient []Slot

func (b *Buffer) WriteIngredient(ing Ingredient) error {
	if err := b.WriteVarInt(int64(len(ing)), 32); err != nil {
		return err
	}
	for _, s := range ing {
		if err := b.WriteSlot(s); err != nil {
			return err
		}
	}
	return nil
}

func (b *Buffer) ReadIngredient() (Ingredient, error) {
	n, err := b.ReadVarInt(32)
	if err != nil {
		return nil, err
	}
	ing := make(Ingredient, n)
	for i := range ing {
		s, err := b.ReadSlot()
		if err != nil {
			return nil, err
		}
		ing[i] = s
	}
	return ing, nil
}

// RecipeKind discriminates the shape of Recipe.Data. The wire identifier
// (e.g. "minecraft:crafting_shapeless") is carried separately as Recipe.Type
// so callers can round-trip recipe types this codec doesn't specially shape
// (the "crafting_special_*" family, which has no extra fields at all).
type RecipeKind int

const (
	RecipeUnshaped RecipeKind = iota
	RecipeShapeless
	RecipeShaped
	RecipeCooking
	RecipeStonecutting
	RecipeSmithing
)

// Recipe is one entry of the DeclareRecipes packet.
type Recipe struct {
	ID   string // recipe identifier
	Type string // wire type identifier, e.g. "minecraft:smelting"
	Kind RecipeKind
	Data any // one of RecipeShapelessData, RecipeShapedData, RecipeCookingData, RecipeStonecuttingData, RecipeSmithingData, or nil
}

type RecipeShapelessData struct {
	Group       string
	Ingredients []Ingredient
	Result      Slot
}

type RecipeShapedData struct {
	Width, Height int32
	Group         string
	Ingredients   []Ingredient // len == Width*Height, row-major
	Result        Slot
}

type RecipeCookingData struct {
	Group        string
	Ingredient   Ingredient
	Result       Slot
	Experience   float32
	CookingTicks int32
}

type RecipeStonecuttingData struct {
	Group      string
	Ingredient Ingredient
	Result     Slot
}

type RecipeSmithingData struct {
	Base     Ingredient
	Addition Ingredient
	Result   Slot
}

func (b *Buffer) WriteRecipe(r Recipe) error {
	if err := b.WriteString(r.Type); err != nil {
		return err
	}
	if err := b.WriteString(r.ID); err != nil {
		return err
	}

	switch d := r.Data.(type) {
	case RecipeShapelessData:
		if err := b.WriteString(d.Group); err != nil {
			return err
		}
		if err := b.WriteVarInt(int64(len(d.Ingredients)), 32); err != nil {
			return err
		}
		for _, ing := range d.Ingredients {
			if err := b.WriteIngredient(ing); err != nil {
				return err
			}
		}
		return b.WriteSlot(d.Result)

	case RecipeShapedData:
		if err := b.WriteVarInt(int64(d.Width), 32); err != nil {
			return err
		}
		if err := b.WriteVarInt(int64(d.Height), 32); err != nil {
			return err
		}
		if err := b.WriteString(d.Group); err != nil {
			return err
		}
		for _, ing := range d.Ingredients {
			if err := b.WriteIngredient(ing); err != nil {
				return err
			}
		}
		return b.WriteSlot(d.Result)

	case RecipeCookingData:
		if err := b.WriteString(d.Group); err != nil {
			return err
		}
		if err := b.WriteIngredient(d.Ingredient); err != nil {
			return err
		}
		if err := b.WriteSlot(d.Result); err != nil {
			return err
		}
		if err := b.WriteFloat32(d.Experience); err != nil {
			return err
		}
		return b.WriteVarInt(int64(d.CookingTicks), 32)

	case RecipeStonecuttingData:
		if err := b.WriteString(d.Group); err != nil {
			return err
		}
		if err := b.WriteIngredient(d.Ingredient); err != nil {
			return err
		}
		return b.WriteSlot(d.Result)

	case RecipeSmithingData:
		if err := b.WriteIngredient(d.Base); err != nil {
			return err
		}
		if err := b.WriteIngredient(d.Addition); err != nil {
			return err
		}
		return b.WriteSlot(d.Result)

	default:
		// crafting_special_* and similar: no extra fields.
		return nil
	}
}

func (b *Buffer) ReadRecipe() (Recipe, error) {
	typ, err := b.ReadString()
	if err != nil {
		return Recipe{}, err
	}
	id, err := b.ReadString()
	if err != nil {
		return Recipe{}, err
	}
	r := Recipe{ID: id, Type: typ}

	switch typ {
	case "minecraft:crafting_shapeless":
		r.Kind = RecipeShapeless
		var d RecipeShapelessData
		if d.Group, err = b.ReadString(); err != nil {
			return Recipe{}, err
		}
		n, err := b.ReadVarInt(32)
		if err != nil {
			return Recipe{}, err
		}
		d.Ingredients = make([]Ingredient, n)
		for i := range d.Ingredients {
			if d.Ingredients[i], err = b.ReadIngredient(); err != nil {
				return Recipe{}, err
			}
		}
		if d.Result, err = b.ReadSlot(); err != nil {
			return Recipe{}, err
		}
		r.Data = d

	case "minecraft:crafting_shaped":
		r.Kind = RecipeShaped
		var d RecipeShapedData
		w, err := b.ReadVarInt(32)
		if err != nil {
			return Recipe{}, err
		}
		h, err := b.ReadVarInt(32)
		if err != nil {
			return Recipe{}, err
		}
		d.Width, d.Height = int32(w), int32(h)
		if d.Group, err = b.ReadString(); err != nil {
			return Recipe{}, err
		}
		d.Ingredients = make([]Ingredient, d.Width*d.Height)
		for i := range d.Ingredients {
			if d.Ingredients[i], err = b.ReadIngredient(); err != nil {
				return Recipe{}, err
			}
		}
		if d.Result, err = b.ReadSlot(); err != nil {
			return Recipe{}, err
		}
		r.Data = d

	case "minecraft:smelting", "minecraft:blasting", "minecraft:smoking", "minecraft:campfire_cooking":
		r.Kind = RecipeCooking
		var d RecipeCookingData
		if d.Group, err = b.ReadString(); err != nil {
			return Recipe{}, err
		}
		if d.Ingredient, err = b.ReadIngredient(); err != nil {
			return Recipe{}, err
		}
		if d.Result, err = b.ReadSlot(); err != nil {
			return Recipe{}, err
		}
		if d.Experience, err = b.ReadFloat32(); err != nil {
			return Recipe{}, err
		}
		ticks, err := b.ReadVarInt(32)
		if err != nil {
			return Recipe{}, err
		}
		d.CookingTicks = int32(ticks)
		r.Data = d

	case "minecraft:stonecutting":
		r.Kind = RecipeStonecutting
		var d RecipeStonecuttingData
		if d.Group, err = b.ReadString(); err != nil {
			return Recipe{}, err
		}
		if d.Ingredient, err = b.ReadIngredient(); err != nil {
			return Recipe{}, err
		}
		if d.Result, err = b.ReadSlot(); err != nil {
			return Recipe{}, err
		}
		r.Data = d

	case "minecraft:smithing":
		r.Kind = RecipeSmithing
		var d RecipeSmithingData
		if d.Base, err = b.ReadIngredient(); err != nil {
			return Recipe{}, err
		}
		if d.Addition, err = b.ReadIngredient(); err != nil {
			return Recipe{}, err
		}
		if d.Result, err = b.ReadSlot(); err != nil {
			return Recipe{}, err
		}
		r.Data = d

	default:
		// crafting_special_* and any other no-payload recipe type.
		r.Kind = RecipeUnshaped
	}

	return r, nil
}
