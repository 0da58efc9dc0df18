package renderer

// goldenDirectOnly is threeSpheres at 1 spp, depth 1, seed 1 over a grey background,
// one hex-encoded RGB row per scanline
var goldenDirectOnly = []string{
	"808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080",
	"808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080",
	"808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080",
	"808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080808080",
	"808080808080808080808080808080808080808080808080808080808080808080000000000000808080000000808080808080808080808080808080808080808080808080808080000000808080000000000000000000000000808080808080808080808080808080808080808080808080808080808080",
	"808080808080808080808080808080808080808080000000000000000000000000000000000000000000000000000000808080808080808080808080808080808080808080000000000000000000000000000000000000000000000000000000000000808080808080808080808080808080808080808080",
	"808080808080808080808080808080808080808080000000000000000000000000000000000000000000000000000000000000808080808080808080808080808080000000000000000000000000000000000000000000000000000000000000000000000000808080808080808080808080808080808080",
	"808080808080808080808080808080000000000000000000000000000000000000000000000000000000000000000000000000000000808080808080808080808080000000000000000000000000000000000000000000000000000000000000000000000000808080808080808080808080808080808080",
	"808080808080808080808080808080808080000000000000000000000000000000000000000000000000000000000000000000000000000000808080808080000000000000000000000000000000000000000000000000000000000000000000000000000000808080808080808080808080808080808080",
	"808080808080808080808080808080000000000000000000000000000000000000000000000000000000000000000000000000000000000000808080808080000000000000000000000000000000000000000000000000000000000000000000000000000000000000808080808080808080808080808080",
	"808080808080808080808080808080000000000000000000000000000000000000000000000000000000000000000000000000000000000000808080808080000000000000000000000000000000000000000000000000000000000000000000000000000000000000808080808080808080808080808080",
	"808080808080808080808080808080000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000808080808080000000808080808080808080",
	"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
	"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
	"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
	"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
	"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
	"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
	"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
	"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
}

// goldenTwoBounces is threeSpheres at 2 spp, depth 2, seed 7 over a sky background
var goldenTwoBounces = []string{
	"d6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff",
	"d6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff",
	"d6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff",
	"d6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff",
	"d6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff4366b54366b54366b5d6e4ff9eb1ddd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff97a1b5cbccc6bfb172cbccc6bfb172cbccc6d6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff",
	"d6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff97a1b54366b52f48802f48804366b54366b54366b54366b54366b59eb1ddd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffcbccc6bfb172bfb172bfb172bfb172bfb172bfb172877d50bfb172d6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff",
	"d6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff9eb1dd4366b54366b52f48802f48804366b54366b54366b54366b54366b52f48809eb1ddd6e4ffd6e4ffd6e4ffd6e4ff97a1b5bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172877d50d6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff",
	"d6e4ffd6e4ffd6e4ffd6e4ffd6e4ff0000004366b52f48804366b54366b50000000000004366b54366b54366b54366b52f48804366b5d6e4ffd6e4ffd6e4ffd6e4ffbfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172cbccc6d6e4ffd6e4ffd6e4ffd6e4ffd6e4ff",
	"d6e4ffd6e4ffd6e4ffd6e4ffd6e4ffd6e4ff2f48802f48802f48802f48804366b54366b52f48802f48800000004366b54366b54366b54366b5d6e4ffd6e4ff877d50877d50877d50bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172000000d6e4ffd6e4ffd6e4ffd6e4ffd6e4ff",
	"d6e4ffd6e4ffd6e4ffd6e4ffd6e4ff2f48804366b52f48802f48802f48804366b54366b50000002f48802f48804366b54366b52f48804366b5d6e4ffd6e4ffbfb172000000bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172bfb172877d50d6e4ffd6e4ffd6e4ffd6e4ffd6e4ff",
	"d6e4ffd6e4ffd6e4ffd6e4ffd6e4ff0000002f48804366b52f48802f48804366b54366b52f48800000004366b52f48802f48802f48802f4880d6e4ffcbd9b5000000877d50000000000000bfb172877d50877d50877d50877d50877d50000000877d50877d50877d50d6e4ffd6e4ffd6e4ffd6e4ffd6e4ff",
	"d6e4ffd6e4ffd6e4ffcbd9b5cbd9b5cbd9b54366b50000000000000000004366b50000002f48800000002f48800000004366b54366b5000000bfcc00bfcc00000000000000000000000000000000000000000000000000000000000000000000000000877d50877d50cbd9b5d6e4ffd6e4ffd6e4ffd6e4ff",
	"bfcc00bfcc00bfcc00bfcc00bfcc008790000000000000002f48804366b50000004366b52f48804366b5000000000000000000000000879000bfcc00bfcc00879000000000000000000000000000000000000000000000000000000000000000000000000000879000bfcc00bfcc00bfcc00bfcc00cbd9b5",
	"bfcc00bfcc00bfcc00bfcc00bfcc00bfcc002f48804366b52f48802f48800000002f48800000002f48802f4880000000000000879000bfcc00879000879000000000000000000000000000000000000000000000000000000000000000000000000000000000bfcc00bfcc00bfcc00bfcc00bfcc00bfcc00",
	"bfcc00bfcc00bfcc00bfcc00bfcc00bfcc00bfcc00bfcc000000000000002f48800000002f48802f48802f4880000000000000879000879000879000879000000000bfcc00000000000000000000000000000000000000000000000000000000879000bfcc00bfcc00879000bfcc00bfcc00bfcc00bfcc00",
	"bfcc00bfcc00bfcc00879000bfcc00879000bfcc008790008790008790000000002f4880000000000000879000000000879000000000000000879000bfcc00bfcc00000000879000000000000000000000000000000000000000879000879000879000bfcc00bfcc00bfcc00bfcc00bfcc00bfcc00bfcc00",
	"879000bfcc00bfcc00bfcc00bfcc00bfcc00879000879000879000879000000000000000879000000000bfcc00000000bfcc00bfcc00879000879000879000bfcc00879000879000000000000000000000879000879000000000bfcc00879000879000879000bfcc00bfcc00bfcc00bfcc00bfcc00bfcc00",
	"bfcc00879000bfcc00bfcc00879000879000879000000000000000bfcc00879000879000879000879000bfcc00000000879000879000879000bfcc00879000879000879000bfcc00bfcc00879000879000000000879000879000879000879000bfcc00879000879000bfcc00bfcc00bfcc00879000bfcc00",
	"bfcc00bfcc00bfcc00879000879000000000000000000000000000879000bfcc00879000879000000000000000879000bfcc00bfcc00bfcc00bfcc00bfcc00bfcc00879000879000879000bfcc00879000bfcc00879000879000000000879000879000879000879000879000879000000000bfcc00bfcc00",
	"000000879000879000bfcc00bfcc00879000000000000000000000879000bfcc00879000879000bfcc00879000bfcc00bfcc00bfcc00879000879000bfcc00bfcc00bfcc00879000879000bfcc00bfcc00bfcc00879000bfcc00000000879000879000bfcc00bfcc00000000000000bfcc00000000879000",
}
