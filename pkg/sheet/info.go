package sheet

import "time"

// ProjectInfo is printed in the title block
type ProjectInfo struct {
	Company     string `mapstructure:"company"`
	Project     string `mapstructure:"project"`
	Customer    string `mapstructure:"customer"`
	OrderNumber string `mapstructure:"order_number"`
}

// WithDefaults fills empty fields with the values used on unnamed jobs.
// The default order number is derived from now.
func (p ProjectInfo) WithDefaults(now time.Time) ProjectInfo {
	if p.Company == "" {
		p.Company = "London Stone"
	}
	if p.Project == "" {
		p.Project = "Ring Segments"
	}
	if p.Customer == "" {
		p.Customer = "Customer"
	}
	if p.OrderNumber == "" {
		p.OrderNumber = "ORD-" + now.Format("20060102")
	}
	return p
}
