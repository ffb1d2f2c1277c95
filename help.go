package refltab

// HelpKeys returns a short description of the standard column names.
//
// Columns in a reflection table can have any name and type; however, it is
// helpful to have a set of standard data columns which can be used by
// different algorithms. These are shown below.
func (t *Table) HelpKeys() string {
	return `Standard column names:
======================

 Columns in the reflection table can have any name and type;
 however, it is helpful to have a set of standard data columns
 which can be used by different algorithms. These are shown below.

 General properties
 ------------------

  flags:                  bit mask status flags
  id:                     experiment id
  panel:                  the detector panel index

 Predicted properties
 --------------------

  miller_index:           miller indices
  entering:               reflection entering/exiting
  s1:                     the diffracted beam vector
  xyzcal.mm:              the predicted location (mm, mm, rad)
  xyzcal.px:              the predicted location (px, px, frame)
  ub_matrix:              predicted crystal setting

 Observed properties
 -------------------

  xyzobs.px.value:        centroid pixel position
  xyzobs.px.variance:     centroid pixel variance
  xyzobs.mm.value:        centroid millimetre position
  xyzobs.mm.variance:     centroid millimetre variance
  intensity.raw.value:    raw intensity value
  intensity.raw.variance: raw intensity variance
  intensity.cor.value:    corrected intensity value
  intensity.cor.variance: corrected intensity variance

 Shoebox properties
 ------------------

  bbox:                   bounding box
  shoebox:                shoebox data/mask/background struct

`
}
