// Package analysis inspects annotated method declarations and decides how an
// action adapter has to be generated for them: whether the method is eligible
// at all, which service type owns it, what parameters it takes and which
// return shape its results fall into.
//
// Everything here is purely syntactic. No type checking is performed, so a
// locally shadowed error type or a response type imported under another name
// are classified by the identifier text as written.
package analysis
