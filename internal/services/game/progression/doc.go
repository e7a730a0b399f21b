// Package progression persists Daggerheart level-ups.
//
// A Service joins the content catalog with the stored character snapshot and
// its level-up history, runs the levelup rules against them and writes the
// outcome back with a compare-and-swap on the progression version. The rules
// themselves live in the levelup package and never touch storage.
package progression
