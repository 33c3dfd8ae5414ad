package region

import (
	"image"
	"image/color"
)

// AlphaMask renders the content decision of Scan as a black-on-white image:
// pixels above AlphaThreshold become black, everything else white. Used by
// the CLI's debug dump to inspect what the scanner considered content.
func AlphaMask(img image.Image) *image.Gray {
	bounds := img.Bounds()
	mask := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if uint8(a>>8) > AlphaThreshold {
				mask.SetGray(x, y, color.Gray{Y: 0})
			} else {
				mask.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return mask
}

// Binarize renders img as a black-on-white content mask from luminance
// instead of alpha: pixels brighter than an Otsu threshold count as content.
// It covers artwork that arrives flattened onto an opaque background, where
// AlphaMask sees everything as content; it assumes bright glyphs over a
// darker ground, which is how generated slot symbols are lit.
func Binarize(img image.Image) *image.Gray {
	gray := grayscale(img)
	th := otsuThreshold(gray)
	for i, v := range gray.Pix {
		if v > th {
			gray.Pix[i] = 0
		} else {
			gray.Pix[i] = 255
		}
	}
	return gray
}

// grayscale converts img using the standard luminance formula
// Y = 0.299*R + 0.587*G + 0.114*B.
func grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := uint8(0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8))
			gray.SetGray(x, y, color.Gray{Y: lum})
		}
	}
	return gray
}

// otsuThreshold picks the binarization threshold that maximizes
// between-class variance of the grayscale histogram.
func otsuThreshold(img *image.Gray) uint8 {
	bounds := img.Bounds()

	var histogram [256]int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			histogram[img.GrayAt(x, y).Y]++
		}
	}

	totalPixels := (bounds.Max.X - bounds.Min.X) * (bounds.Max.Y - bounds.Min.Y)
	if totalPixels == 0 {
		return 128
	}

	var totalSum float64
	for i := 0; i < 256; i++ {
		totalSum += float64(i) * float64(histogram[i])
	}

	var sumBackground float64
	var weightBackground, weightForeground int
	var maxVariance float64
	var bestThreshold uint8

	for t := 0; t < 256; t++ {
		weightBackground += histogram[t]
		if weightBackground == 0 {
			continue
		}

		weightForeground = totalPixels - weightBackground
		if weightForeground == 0 {
			break
		}

		sumBackground += float64(t) * float64(histogram[t])

		meanBackground := sumBackground / float64(weightBackground)
		meanForeground := (totalSum - sumBackground) / float64(weightForeground)

		variance := float64(weightBackground) * float64(weightForeground) *
			(meanBackground - meanForeground) * (meanBackground - meanForeground)

		if variance > maxVariance {
			maxVariance = variance
			bestThreshold = uint8(t)
		}
	}

	return bestThreshold
}
