package domain

import "fmt"

// Category is the closed set of job categories.
type Category string

const (
	CategoryTechnology      Category = "technology"
	CategoryHealthcare      Category = "healthcare"
	CategoryFinance         Category = "finance"
	CategoryEducation       Category = "education"
	CategoryMarketing       Category = "marketing"
	CategorySales           Category = "sales"
	CategoryEngineering     Category = "engineering"
	CategoryDesign          Category = "design"
	CategoryCustomerService Category = "customer_service"
	CategoryOther           Category = "other"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryTechnology,
	CategoryHealthcare,
	CategoryFinance,
	CategoryEducation,
	CategoryMarketing,
	CategorySales,
	CategoryEngineering,
	CategoryDesign,
	CategoryCustomerService,
	CategoryOther,
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %q", s)
}

func (c Category) String() string {
	return string(c)
}

// JobType is the closed set of employment types.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// JobTypes lists every valid job type.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

// ParseJobType converts a raw string into a JobType.
func ParseJobType(s string) (JobType, error) {
	for _, t := range JobTypes {
		if JobType(s) == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid job type: %q", s)
}

func (t JobType) String() string {
	return string(t)
}
