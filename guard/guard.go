package guard

// Throw is the shared Raiser. It holds no data, so concurrent use needs no synchronization.
var Throw Raiser

// When returns cond unchanged. It only exists to make call sites read as a sentence:
//
//	if err := guard.Throw.ArgumentNull(guard.When(cfg == nil), "cfg", ""); err != nil {
//		return err
//	}
func When(cond bool) bool {
	return cond
}

// Must panics with err if it is not nil.
//
// Use it only where an error cannot be returned, such as package initialization.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
