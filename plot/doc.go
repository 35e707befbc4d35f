// Package plot renders a discovered rectangle against its point cloud as
// a grid of pairwise feature panels, a purely observational collaborator
// that never touches search state. Render draws one panel per pair of
// dimensions — k·(k-1)/2 of them, arranged in the near-square grid whose
// row count evenly divides the panel count — each scattering the cloud
// split into points "behind" and "in front of" the rectangle (by the
// Euclidean norm of their un-plotted coordinates) and overlaying the
// rectangle's face as a translucent red patch.
package plot
