package idkey_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/idkey"
	"github.com/hupe1980/idkey/catalog"
	"github.com/hupe1980/idkey/model"
)

func exampleCatalog() *model.Catalog {
	items := []model.Item{
		{UUID: "ladybird", Name: "Ladybird", Space: model.Space{
			"legs":  model.NumberValue(6),
			"wings": model.TextValue("yes"),
		}},
		{UUID: "spider", Name: "Spider", Space: model.Space{
			"legs":  model.NumberValue(8),
			"wings": model.TextValue("no"),
		}},
		{UUID: "ant", Name: "Ant", Space: model.Space{
			"legs":  model.NumberValue(6),
			"wings": model.TextValue("no"),
		}},
	}
	types := map[string]model.FilterType{
		"legs":  model.NumberFilter,
		"wings": model.TextOnlyFilter,
	}
	return model.NewCatalog(items, types, nil)
}

// Example_apply narrows a key down with two filters.
func Example_apply() {
	ctx := context.Background()

	key := idkey.New()
	if err := key.Load(ctx, catalog.Static(exampleCatalog())); err != nil {
		log.Fatal(err)
	}

	sel := model.NewSelection()
	sel.Set("legs", "6")
	if _, err := key.Apply(ctx, sel); err != nil {
		log.Fatal(err)
	}
	fmt.Println(key.State(), key.VisibleCount())
	fmt.Println("wings:", key.Possible().Values("wings"))

	sel.Set("wings", "yes")
	if _, err := key.Apply(ctx, sel); err != nil {
		log.Fatal(err)
	}
	for _, item := range key.VisibleItems() {
		fmt.Println(item.Name)
	}
	// Output:
	// filtered 2
	// wings: [no yes]
	// Ladybird
}

// Example_reset shows that an empty selection makes every item visible again.
func Example_reset() {
	ctx := context.Background()

	key := idkey.New()
	if err := key.SetCatalog(ctx, exampleCatalog()); err != nil {
		log.Fatal(err)
	}

	sel := model.NewSelection()
	sel.Set("legs", "8")
	_, _ = key.Apply(ctx, sel)
	fmt.Println(key.VisibleCount(), key.IsVisible("ant"))

	_, _ = key.Apply(ctx, model.NewSelection())
	fmt.Println(key.State(), key.VisibleCount(), key.IsVisible("ant"))
	// Output:
	// 1 false
	// unfiltered 3 true
}
