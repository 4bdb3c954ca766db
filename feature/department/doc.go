// Package department manages company departments.
//
// A department is the organizational unit every employee belongs to and every
// purchase order is booked against. Departments carry a unique name and a
// unique cost center code.
//
// # HTTP Endpoints
//
//   - POST   /departments      : Create a department.
//   - GET    /departments      : List departments (paginated).
//   - GET    /departments/{id} : Get a department.
//   - DELETE /departments/{id} : Delete a department (fails while referenced).
package department
