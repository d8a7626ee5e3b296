// Package raise builds errors from conditions in a fluent chain.
//
// A check either raises an error of a chosen kind, annotated with key/value
// metadata and a "Date" stamp, or returns a Result that allows further checks.
// Once an error is raised the rest of the chain is skipped and Err reports it.
//
// Common usage:
// - If/IfFunc: raise kind E built from a message when a condition holds
// - IfWith/IfFuncWith: raise the error returned by a factory
// - Result.Or/OrFunc/OrWith/OrFuncWith: chain another check of the same kind
// - OrAs/OrFuncAs/OrWithAs/OrFuncWithAs: chain a check of a different kind
// - Result.ElseDo: run a callback when nothing was raised
// - Result.Err/As/Must: end the chain
// - AddData: attach metadata to an existing error
// - Using: start a chain with a custom clock or date layout
//
//	err := raise.If[*raise.NullReference](user == nil, "user is required").
//		Or(user != nil && user.Name == "", "user name is required").
//		ElseDo(func() { log.Println("user ok") }).
//		Err()
package raise
