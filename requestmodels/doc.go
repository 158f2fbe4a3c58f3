/*
Package requestmodels defines the request and result shapes shared by the table
facade: typed parameter overrides, result pages and batch results.

Overrides is the escape hatch into request parameters the facade does not
generate itself (pagination cursors, consistency flags, projections, index
selection). Fields are optional; a set field overwrites the corresponding
generated parameter, including the facade's defaults.
*/
package requestmodels
