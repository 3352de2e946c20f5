// Package lore generates the Sanctum's flavour text: a short, cryptic log
// entry revealed each time a mechanism stage is reactivated.
//
// Generation is an injected capability. Callers build a Generator from a
// Config holding an optional credential; without one the generator reports
// ErrServiceUnavailable instead of reaching for a global client.
//
//	generator, err := lore.NewGenerator(ctx, lore.Config{APIKey: key})
//	text, err := generator.Generate(ctx, 3)
//	if err != nil {
//		text = lore.FallbackText(err)
//	}
package lore
