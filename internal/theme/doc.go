// Package theme owns the light/dark selector shared by every view in a
// mounted tree.
//
// A Registry resolves its Selector to one of two constant StyleBundles and
// broadcasts the new bundle to its subscribers whenever Toggle is called.
// Delivery is synchronous: every subscriber has been called by the time
// Toggle returns.
//
//	reg := theme.NewRegistry(theme.Options{})
//	defer reg.Close()
//
//	sub := reg.Subscribe(func(b theme.StyleBundle) {
//		fmt.Println(b.Title.Render("title"))
//	})
//	defer sub.Unsubscribe()
//
//	ctx = theme.WithRegistry(ctx, reg)
//	theme.FromContext(ctx).Toggle()
package theme
