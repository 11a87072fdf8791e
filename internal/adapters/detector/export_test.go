// export_test.go exports private functions for white-box testing.
package detector

// Detect exports detect for testing.
var Detect = detect
