package models

// ReturnSignature is the classified result list of an action together with
// the arity facts the handler templates need
type ReturnSignature struct {
	Shape           ReturnShape
	Values          int  // number of results that are not the trailing error
	PointerResponse bool // WrappedResponse returns *ServiceResponse rather than a value
	ConvertResponse bool // the response type is not runar.ServiceResponse and goes through runar.ResponseOf
}

// ActionMetadata is everything needed to synthesize one action adapter
type ActionMetadata struct {
	OperationName string          // name the action is registered under
	MethodName    string          // Go method invoked by the handler
	ReceiverType  string          // owning service type (registered as a pointer)
	Return        ReturnSignature // classified results
	Params        []Parameter     // non-receiver parameters
	PassParams    bool            // the method accepts the parameter bag after its context
	Location      SourceLocation  // position of the annotation
}
