package testfixtures

// Fruits is a short list picker fixture.
func Fruits() []string {
	return []string{"apple", "banana", "cherry", "date", "elderberry", "fig", "grape"}
}
