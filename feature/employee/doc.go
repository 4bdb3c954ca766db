// Package employee manages company staff records.
//
// Employees belong to a department and carry a unique email, a role, a salary
// in cents and a hire date. Listings can be filtered by department and by the
// active flag.
package employee
