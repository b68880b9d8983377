// Package runar is the runtime half of the runar action generator.
//
// Code generated by the runar CLI calls into this package: it recovers the
// concrete service from a type-erased ServiceRef with Downcast, attaches
// operation context to failures with WrapExecution, converts plain results
// with ToValue and wraps them with Success. Generated packages expose a
// RegisterActions function that submits one Descriptor per annotated method
// into a Registry owned by the host program:
//
//	registry := runar.NewRegistry()
//	if err := users.RegisterActions(registry); err != nil {
//		log.Fatal(err)
//	}
//	dispatcher := runar.NewDispatcher(registry)
//	dispatcher.AddService("users", &users.UserService{})
//	resp, err := dispatcher.Request(ctx, "users/get_user", runar.Params{"id": "42"})
package runar
