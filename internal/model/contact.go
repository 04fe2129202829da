package model

// ContactPerson represents one contact working for a vendor. VendorID
// is a plain foreign key: it is not validated against the vendor
// collection, so an orphaned contact is possible and tolerated.
type ContactPerson struct {
	ID          int    `json:"id"`
	VendorID    int    `json:"vendorId"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

func (c ContactPerson) EntityID() int { return c.ID }

func (c ContactPerson) WithEntityID(id int) ContactPerson {
	c.ID = id
	return c
}

// ContactPersonPatch is a partial update for a contact person. Nil
// fields are left untouched.
type ContactPersonPatch struct {
	VendorID    *int    `json:"vendorId"`
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
}

// Apply merges the patch into the given contact and returns the result.
func (p ContactPersonPatch) Apply(c ContactPerson) ContactPerson {
	if p.VendorID != nil {
		c.VendorID = *p.VendorID
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Designation != nil {
		c.Designation = *p.Designation
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	return c
}

// SeedContactPersons returns the initial contact fixtures loaded at
// process start.
func SeedContactPersons() []ContactPerson {
	return []ContactPerson{
		{ID: 1, VendorID: 1, Name: "John Doe", Designation: "Manager", Email: "john@vendor1.com", Phone: "1111111111"},
		{ID: 2, VendorID: 1, Name: "Jane Smith", Designation: "Sales", Email: "jane@vendor1.com", Phone: "2222222222"},
		{ID: 3, VendorID: 2, Name: "Bob Johnson", Designation: "CEO", Email: "bob@vendor2.com", Phone: "3333333333"},
	}
}
