// Package model defines the core record types used throughout refltab.
//
// # Geometry Types
//
//   - Vec2 / Vec3: gonum spatial vectors (detector plane / lab frame)
//   - Int3: miller-index shaped integer triple
//   - Int6: pixel-space bounding box (x0, x1, y0, y1, z0, z1)
//
// # Data Types
//
//   - Observation: measured spot (panel, centroid, intensities)
//   - Shoebox: per-reflection pixel data (counts, mask, background)
//   - Grid: dense 3-D array backing the shoebox planes
package model
