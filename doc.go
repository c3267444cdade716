// Package simplot plots time series produced by glucose/insulin
// simulations.
//
// # Input
//
// The input is a table with a header row naming the columns followed by
// numeric data rows:
//
//	Time, Patient_1, Patient_2
//	0, 121.3, 118.9
//	5, 122.0, NaN
//
// Column 0 is elapsed time in minutes, all other columns are arbitrary
// measured quantities. Tables are read from CSV files or from the first
// sheet of an .xlsx workbook (ReadTable) and converted to a gonum matrix
// (ToMatrix). Any non-numeric field aborts the conversion; NaN marks a
// missing sample. Blank lines in CSV input are skipped.
//
// # Plotting
//
// Each non-time column becomes one Series plotted against time in hours
// on a shared figure. Missing samples split a series into segments so the
// line shows a gap. The figure is rendered with gonum.org/v1/plot and can
// be saved in any format gonum supports:
//
//	tbl, _ := simplot.ReadTable("CircadianVariability.csv")
//	m, _ := tbl.Matrix()
//	df, _ := simplot.NewDataFrame(tbl.Header, m)
//	p := simplot.New(df)
//	p.Save("CircadianVariability.png", 20*vg.Centimeter, 12*vg.Centimeter)
package simplot
