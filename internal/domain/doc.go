// Package domain models the Tropical Cyclone Intensification Potential Index
// (TCIPI) and the coastal station wind feed.
//
// # Scoring
//
// Each physical factor is mapped onto a 0–10 sub-score with a piecewise-linear
// rule. Within a band the value is interpolated between the band edges; the
// input is first clamped to the band, so out-of-range values saturate instead
// of extrapolating:
//
//	SST (°C):         ≥31 → 8–10 | 28–31 → 5–8 | 26–28 → 2–5 | below → 0–3 over 20–26
//	Shear (kt):       <5 → 10–8 | 5–10 → 8–6 | 10–15 → 6–4 | 15–25 → 4–2 | above → 2–0 over 25–40
//	Humidity (%):     >75 → 8–10 | 50–75 → 4–7 | 40–50 → 3 | below → 0–2 over 0–40
//	OHC (kJ/cm²):     <25 → 1 | 25–75 → 2–4 | 75–125 → 4–8 | 125–150 → 9 | ≥150 → 10
//	Div./Conv.:       0–10 → 0–5 | 11–20 → 5–7 | 21–31 → 7–9 | anything else → 10
//
// The divergence/convergence table leaves gaps at (10, 11) and (20, 21).
// Values in the gaps, and negative values, take the final branch and score 10.
//
// # Quantization
//
// Sub-scores and the composite are quantized to the nearest 0.5 with
// round-half-to-even: 4.25 → 4.0, 4.75 → 5.0. See [RoundToNearestHalf].
//
// # Composite
//
//	TCIPI = 0.35·SST + 0.30·Shear + 0.25·Humidity + 0.05·Divergence + 0.05·Fifth
//
// The fifth factor is ocean heat content or lower-level convergence depending
// on the [Profile] selected at startup. Profiles also carry the category
// threshold table and whether the cyclone size adjustment is applied:
//
//	ohc:          Very High ≥8.0 | High ≥6.5 | Medium ≥5.0 | Low ≥3.5 | Very Low
//	convergence:  Very High ≥8.5 | High ≥7.0 | Medium ≥5.5 | Low ≥4.0 | Very Low
//
// # Size adjustment
//
// Small cyclones gain 0.75 when the unadjusted category is Medium or above and
// lose 0.75 otherwise. Large cyclones lose 0.5 when Medium or above and gain 0.5
// otherwise. The adjusted value is re-quantized, clamped to [0, 10] and
// classified again.
//
// # Station feed
//
// Wind speed arrives in m/s and is converted to km/h (×3.6) and mph
// (×0.621371). The intensity band is chosen on km/h:
//
//	≥111 major hurricane | ≥74 hurricane | ≥39 tropical storm | ≥0 tropical depression
//
// Wind direction maps onto eight arrows. Candidates are checked clockwise from
// north and the first within 22.5° wins, so 22.5° resolves to north.
package domain
