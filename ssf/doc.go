// Package ssf implements Ehler's Super Smoother Filter (SSF).
//
// The Super Smoother is John F. Ehlers's solution to reduce lag and remove
// aliasing noise, drawn from his research in aerospace analog filter design.
// This implementation has two poles: as a recursive digital filter, each
// output value depends on the two prior output values plus the current and
// prior inputs.
//
// # Basic Usage
//
// Smooth a close series with the default 20-bar window:
//
//	smoothed := ssf.New(close)
//	if smoothed == nil {
//	    // series was nil or shorter than the filter length
//	}
//	fmt.Println(smoothed.Name) // "SSF_20"
//
// # Configuration
//
// All parameters live in Config; out-of-range values fall back to defaults
// rather than producing an error:
//
//	cfg := ssf.DefaultConfig()
//	cfg.Length = 10
//	cfg.Offset = 2                  // shift the output two bars forward
//	cfg.FillMethod = ssf.FillBackward
//	smoothed := ssf.SSF(close, cfg)
//
// # Variants
//
// Two coefficient derivations are available. The default uses a degrees
// style cosine argument with Ehler's truncated constants (pi = 3.14159,
// sqrt2 = 1.414). Setting Everget selects the radians formulation used by
// Everget's TradingView script; pass full-precision constants to match it
// exactly:
//
//	cfg := ssf.DefaultConfig()
//	cfg.Everget = true
//	cfg.Pi = math.Pi
//	cfg.Sqrt2 = math.Sqrt2
//	smoothed := ssf.SSF(close, cfg) // named "SSFe_20"
//
// # Sources
//
//   - http://traders.com/documentation/feedbk_docs/2014/01/traderstips.html
//   - https://www.tradingview.com/script/VdJy0yBJ-Ehlers-Super-Smoother-Filter/
//   - https://www.mql5.com/en/code/588
package ssf
