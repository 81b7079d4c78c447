package domain

// Client models a billable customer. Clients are referenced from invoices
// by ID only; deleting a client leaves those references dangling.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}
