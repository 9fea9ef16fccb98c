// Package classify maps continuous values onto ordered, labeled bands.
//
// A Ladder holds N strictly increasing thresholds and N+1 labels. A value
// gets the label of the first threshold it is below, or the last label when
// it reaches every threshold:
//
//	bands, _ := classify.NewLadder([]float64{18.5, 25, 30},
//		[]string{"Underweight", "Normal", "Overweight", "Obese"})
//	bands.Classify(22.1) // "Normal"
//	bands.Classify(25)   // "Overweight"
//
// The package also provides the ladders built on top of it: body-mass index
// health bands and quantity-based bulk pricing.
package classify
