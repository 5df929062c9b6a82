// Package generator turns generated content into files on disk.
//
// Generators build a list of Operations; Execute validates them, asks the
// Resolver what to do with files that already exist, and commits the
// remaining writes through a Transaction:
//
//	ops := []generator.Operation{
//	    &generator.WriteFileOp{Path: "icon_16x16.png", Content: png, Mode: 0644},
//	}
//	resolver, err := generator.NewResolver(force, skip, diff)
//	if err != nil {
//	    return err
//	}
//	err = generator.Execute(ctx, ops, generator.ExecuteOptions{Resolver: resolver})
//
// # Conflicts
//
// Files whose content is unchanged are left alone. Otherwise the resolver
// strategy decides: --force overwrites, --skip keeps the existing file,
// --diff shows a diff before asking, and the default asks interactively
// when stdin is a terminal and overwrites when it is not.
//
// # Transactions
//
// If any write fails, files created by the transaction are removed and
// files it overwrote get their previous content back.
package generator
