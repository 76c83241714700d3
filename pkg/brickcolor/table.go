package brickcolor

// table is the legacy BrickColor palette. Order matters: Nearest breaks
// ties in favor of the entry listed first.
var table = []Entry{
	{ID: 1, Name: "White", Color: RGB{242, 243, 243}},
	{ID: 2, Name: "Grey", Color: RGB{161, 165, 162}},
	{ID: 3, Name: "Light yellow", Color: RGB{249, 233, 153}},
	{ID: 5, Name: "Brick yellow", Color: RGB{215, 197, 154}},
	{ID: 6, Name: "Light green (Mint)", Color: RGB{194, 218, 184}},
	{ID: 9, Name: "Light reddish violet", Color: RGB{232, 186, 200}},
	{ID: 11, Name: "Pastel Blue", Color: RGB{128, 187, 219}},
	{ID: 12, Name: "Light orange brown", Color: RGB{203, 132, 66}},
	{ID: 18, Name: "Nougat", Color: RGB{204, 142, 105}},
	{ID: 21, Name: "Bright red", Color: RGB{196, 40, 28}},
	{ID: 22, Name: "Med. reddish violet", Color: RGB{196, 112, 160}},
	{ID: 23, Name: "Bright blue", Color: RGB{13, 105, 172}},
	{ID: 24, Name: "Bright yellow", Color: RGB{245, 205, 48}},
	{ID: 25, Name: "Earth orange", Color: RGB{98, 71, 50}},
	{ID: 26, Name: "Black", Color: RGB{27, 42, 53}},
	{ID: 27, Name: "Dark grey", Color: RGB{109, 110, 108}},
	{ID: 28, Name: "Dark green", Color: RGB{40, 127, 71}},
	{ID: 29, Name: "Medium green", Color: RGB{161, 196, 140}},
	{ID: 36, Name: "Lig. Yellowich orange", Color: RGB{243, 207, 155}},
	{ID: 37, Name: "Bright green", Color: RGB{75, 151, 75}},
	{ID: 38, Name: "Dark orange", Color: RGB{160, 95, 53}},
	{ID: 39, Name: "Light bluish violet", Color: RGB{193, 202, 222}},
	{ID: 40, Name: "Transparent", Color: RGB{236, 236, 236}},
	{ID: 41, Name: "Tr. Red", Color: RGB{205, 84, 75}},
	{ID: 42, Name: "Tr. Lg blue", Color: RGB{193, 223, 240}},
	{ID: 43, Name: "Tr. Blue", Color: RGB{123, 182, 232}},
	{ID: 44, Name: "Tr. Yellow", Color: RGB{247, 241, 141}},
	{ID: 45, Name: "Light blue", Color: RGB{180, 210, 228}},
	{ID: 47, Name: "Tr. Flu. Reddish orange", Color: RGB{217, 133, 108}},
	{ID: 48, Name: "Tr. Green", Color: RGB{132, 182, 141}},
	{ID: 49, Name: "Tr. Flu. Green", Color: RGB{248, 241, 132}},
	{ID: 50, Name: "Phosph. White", Color: RGB{236, 232, 222}},
	{ID: 100, Name: "Light red", Color: RGB{238, 196, 182}},
	{ID: 101, Name: "Medium red", Color: RGB{218, 134, 122}},
	{ID: 102, Name: "Medium blue", Color: RGB{110, 153, 202}},
	{ID: 103, Name: "Light grey", Color: RGB{199, 193, 183}},
	{ID: 104, Name: "Bright violet", Color: RGB{107, 50, 124}},
	{ID: 105, Name: "Br. yellowish orange", Color: RGB{226, 155, 64}},
	{ID: 106, Name: "Bright orange", Color: RGB{218, 133, 65}},
	{ID: 107, Name: "Bright bluish green", Color: RGB{0, 143, 156}},
	{ID: 108, Name: "Earth yellow", Color: RGB{104, 92, 67}},
	{ID: 110, Name: "Bright bluish violet", Color: RGB{67, 84, 147}},
	{ID: 111, Name: "Tr. Brown", Color: RGB{191, 183, 177}},
	{ID: 112, Name: "Medium bluish violet", Color: RGB{104, 116, 172}},
	{ID: 113, Name: "Tr. Medi. reddish violet", Color: RGB{229, 173, 200}},
	{ID: 115, Name: "Med. yellowish green", Color: RGB{199, 210, 60}},
	{ID: 116, Name: "Med. bluish green", Color: RGB{85, 165, 175}},
	{ID: 118, Name: "Light bluish green", Color: RGB{183, 215, 213}},
	{ID: 119, Name: "Br. yellowish green", Color: RGB{164, 189, 71}},
	{ID: 120, Name: "Lig. yellowish green", Color: RGB{217, 228, 167}},
	{ID: 121, Name: "Med. yellowish orange", Color: RGB{231, 172, 88}},
	{ID: 123, Name: "Br. reddish orange", Color: RGB{211, 111, 76}},
	{ID: 124, Name: "Bright reddish violet", Color: RGB{146, 57, 120}},
	{ID: 125, Name: "Light orange", Color: RGB{234, 184, 146}},
	{ID: 126, Name: "Tr. Bright bluish violet", Color: RGB{165, 165, 203}},
	{ID: 127, Name: "Gold", Color: RGB{220, 188, 129}},
	{ID: 128, Name: "Dark nougat", Color: RGB{174, 122, 89}},
	{ID: 131, Name: "Silver", Color: RGB{156, 163, 168}},
	{ID: 133, Name: "Neon orange", Color: RGB{213, 115, 61}},
	{ID: 134, Name: "Neon green", Color: RGB{216, 221, 86}},
	{ID: 135, Name: "Sand blue", Color: RGB{116, 134, 157}},
	{ID: 136, Name: "Sand violet", Color: RGB{135, 124, 144}},
	{ID: 137, Name: "Medium orange", Color: RGB{224, 152, 100}},
	{ID: 138, Name: "Sand yellow", Color: RGB{149, 138, 115}},
	{ID: 140, Name: "Earth blue", Color: RGB{32, 58, 86}},
	{ID: 141, Name: "Earth green", Color: RGB{39, 70, 45}},
	{ID: 143, Name: "Tr. Flu. Blue", Color: RGB{207, 226, 247}},
	{ID: 145, Name: "Sand blue metallic", Color: RGB{121, 136, 161}},
	{ID: 146, Name: "Sand violet metallic", Color: RGB{149, 142, 163}},
	{ID: 147, Name: "Sand yellow metallic", Color: RGB{147, 135, 103}},
	{ID: 148, Name: "Dark grey metallic", Color: RGB{87, 88, 87}},
	{ID: 149, Name: "Black metallic", Color: RGB{22, 29, 50}},
	{ID: 150, Name: "Light grey metallic", Color: RGB{171, 173, 172}},
	{ID: 151, Name: "Sand green", Color: RGB{120, 144, 130}},
	{ID: 153, Name: "Sand red", Color: RGB{149, 121, 119}},
	{ID: 154, Name: "Dark red", Color: RGB{123, 46, 47}},
	{ID: 157, Name: "Tr. Flu. Yellow", Color: RGB{255, 246, 123}},
	{ID: 158, Name: "Tr. Flu. Red", Color: RGB{225, 164, 194}},
	{ID: 168, Name: "Gun metallic", Color: RGB{117, 108, 98}},
	{ID: 176, Name: "Red flip/flop", Color: RGB{151, 105, 91}},
	{ID: 178, Name: "Yellow flip/flop", Color: RGB{180, 132, 85}},
	{ID: 179, Name: "Silver flip/flop", Color: RGB{137, 135, 136}},
	{ID: 180, Name: "Curry", Color: RGB{215, 169, 75}},
	{ID: 190, Name: "Fire Yellow", Color: RGB{249, 214, 46}},
	{ID: 191, Name: "Flame yellowish orange", Color: RGB{232, 171, 45}},
	{ID: 192, Name: "Reddish brown", Color: RGB{105, 64, 40}},
	{ID: 193, Name: "Flame reddish orange", Color: RGB{207, 96, 36}},
	{ID: 194, Name: "Medium stone grey", Color: RGB{163, 162, 165}},
	{ID: 195, Name: "Royal blue", Color: RGB{70, 103, 164}},
	{ID: 196, Name: "Dark Royal blue", Color: RGB{35, 71, 139}},
	{ID: 198, Name: "Bright reddish lilac", Color: RGB{142, 66, 133}},
	{ID: 199, Name: "Dark stone grey", Color: RGB{99, 95, 98}},
	{ID: 200, Name: "Lemon metalic", Color: RGB{130, 138, 93}},
	{ID: 208, Name: "Light stone grey", Color: RGB{229, 228, 223}},
	{ID: 209, Name: "Dark Curry", Color: RGB{176, 142, 68}},
	{ID: 210, Name: "Faded green", Color: RGB{112, 149, 120}},
	{ID: 211, Name: "Turquoise", Color: RGB{121, 181, 181}},
	{ID: 212, Name: "Light Royal blue", Color: RGB{159, 195, 233}},
	{ID: 213, Name: "Medium Royal blue", Color: RGB{108, 129, 183}},
	{ID: 216, Name: "Rust", Color: RGB{144, 76, 42}},
	{ID: 217, Name: "Brown", Color: RGB{124, 92, 70}},
	{ID: 218, Name: "Reddish lilac", Color: RGB{150, 112, 159}},
	{ID: 219, Name: "Lilac", Color: RGB{107, 98, 155}},
	{ID: 220, Name: "Light lilac", Color: RGB{167, 169, 206}},
	{ID: 221, Name: "Bright purple", Color: RGB{205, 98, 152}},
	{ID: 222, Name: "Light purple", Color: RGB{228, 173, 200}},
	{ID: 223, Name: "Light pink", Color: RGB{220, 144, 149}},
	{ID: 224, Name: "Light brick yellow", Color: RGB{240, 213, 160}},
	{ID: 225, Name: "Warm yellowish orange", Color: RGB{235, 184, 127}},
	{ID: 226, Name: "Cool yellow", Color: RGB{253, 234, 141}},
	{ID: 232, Name: "Dove blue", Color: RGB{125, 187, 221}},
	{ID: 268, Name: "Medium lilac", Color: RGB{52, 43, 117}},
	{ID: 301, Name: "Slime green", Color: RGB{80, 109, 84}},
	{ID: 302, Name: "Smoky grey", Color: RGB{91, 93, 105}},
	{ID: 303, Name: "Dark blue", Color: RGB{0, 16, 176}},
	{ID: 304, Name: "Parsley green", Color: RGB{44, 101, 29}},
	{ID: 305, Name: "Steel blue", Color: RGB{82, 124, 174}},
	{ID: 306, Name: "Storm blue", Color: RGB{51, 88, 130}},
	{ID: 307, Name: "Lapis", Color: RGB{16, 42, 220}},
	{ID: 308, Name: "Dark indigo", Color: RGB{61, 21, 133}},
	{ID: 309, Name: "Sea green", Color: RGB{52, 142, 64}},
	{ID: 310, Name: "Shamrock", Color: RGB{91, 154, 76}},
	{ID: 311, Name: "Fossil", Color: RGB{159, 161, 172}},
	{ID: 312, Name: "Mulberry", Color: RGB{89, 34, 89}},
	{ID: 313, Name: "Forest green", Color: RGB{31, 128, 29}},
	{ID: 314, Name: "Cadet blue", Color: RGB{159, 173, 192}},
	{ID: 315, Name: "Electric blue", Color: RGB{9, 137, 207}},
	{ID: 316, Name: "Eggplant", Color: RGB{123, 0, 123}},
	{ID: 317, Name: "Moss", Color: RGB{124, 156, 107}},
	{ID: 318, Name: "Artichoke", Color: RGB{138, 171, 133}},
	{ID: 319, Name: "Sage green", Color: RGB{185, 196, 177}},
	{ID: 320, Name: "Ghost grey", Color: RGB{202, 203, 209}},
	{ID: 321, Name: "Lilac", Color: RGB{167, 94, 155}},
	{ID: 322, Name: "Plum", Color: RGB{123, 47, 123}},
	{ID: 323, Name: "Olivine", Color: RGB{148, 190, 129}},
	{ID: 324, Name: "Laurel green", Color: RGB{168, 189, 153}},
	{ID: 325, Name: "Quill grey", Color: RGB{223, 223, 222}},
	{ID: 327, Name: "Crimson", Color: RGB{151, 0, 0}},
	{ID: 328, Name: "Mint", Color: RGB{177, 229, 166}},
	{ID: 329, Name: "Baby blue", Color: RGB{152, 194, 219}},
	{ID: 330, Name: "Carnation pink", Color: RGB{255, 152, 220}},
	{ID: 331, Name: "Persimmon", Color: RGB{255, 89, 89}},
	{ID: 332, Name: "Maroon", Color: RGB{117, 0, 0}},
	{ID: 333, Name: "Gold", Color: RGB{239, 184, 56}},
	{ID: 334, Name: "Daisy orange", Color: RGB{248, 217, 109}},
	{ID: 335, Name: "Pearl", Color: RGB{231, 231, 236}},
	{ID: 336, Name: "Fog", Color: RGB{199, 212, 228}},
	{ID: 337, Name: "Salmon", Color: RGB{255, 148, 148}},
	{ID: 338, Name: "Terra Cotta", Color: RGB{190, 104, 98}},
	{ID: 339, Name: "Cocoa", Color: RGB{86, 36, 36}},
	{ID: 340, Name: "Wheat", Color: RGB{241, 231, 199}},
	{ID: 341, Name: "Buttermilk", Color: RGB{254, 243, 187}},
	{ID: 342, Name: "Mauve", Color: RGB{224, 178, 208}},
	{ID: 343, Name: "Sunrise", Color: RGB{212, 144, 189}},
	{ID: 344, Name: "Tawny", Color: RGB{150, 85, 85}},
	{ID: 345, Name: "Rust", Color: RGB{143, 76, 42}},
	{ID: 346, Name: "Cashmere", Color: RGB{211, 190, 150}},
	{ID: 347, Name: "Khaki", Color: RGB{226, 220, 188}},
	{ID: 348, Name: "Lily white", Color: RGB{237, 234, 234}},
	{ID: 349, Name: "Seashell", Color: RGB{233, 218, 218}},
	{ID: 350, Name: "Burgundy", Color: RGB{136, 62, 62}},
	{ID: 351, Name: "Cork", Color: RGB{188, 155, 93}},
	{ID: 352, Name: "Burlap", Color: RGB{199, 172, 120}},
	{ID: 353, Name: "Beige", Color: RGB{202, 191, 163}},
	{ID: 354, Name: "Oyster", Color: RGB{187, 179, 178}},
	{ID: 355, Name: "Pine Cone", Color: RGB{108, 88, 75}},
	{ID: 356, Name: "Fawn brown", Color: RGB{160, 132, 79}},
	{ID: 357, Name: "Hurricane grey", Color: RGB{149, 137, 136}},
	{ID: 358, Name: "Cloudy grey", Color: RGB{171, 168, 158}},
	{ID: 359, Name: "Linen", Color: RGB{175, 148, 131}},
	{ID: 360, Name: "Copper", Color: RGB{150, 103, 102}},
	{ID: 361, Name: "Dirt brown", Color: RGB{86, 66, 54}},
	{ID: 362, Name: "Bronze", Color: RGB{126, 104, 63}},
	{ID: 363, Name: "Flint", Color: RGB{105, 102, 92}},
	{ID: 364, Name: "Dark taupe", Color: RGB{90, 76, 66}},
	{ID: 365, Name: "Burnt Sienna", Color: RGB{106, 57, 9}},
	{ID: 1001, Name: "Institutional white", Color: RGB{248, 248, 248}},
	{ID: 1002, Name: "Mid gray", Color: RGB{205, 205, 205}},
	{ID: 1003, Name: "Really black", Color: RGB{17, 17, 17}},
	{ID: 1004, Name: "Really red", Color: RGB{255, 0, 0}},
	{ID: 1005, Name: "Deep orange", Color: RGB{255, 176, 0}},
	{ID: 1006, Name: "Alder", Color: RGB{180, 128, 255}},
	{ID: 1007, Name: "Dusty Rose", Color: RGB{163, 75, 75}},
	{ID: 1008, Name: "Olive", Color: RGB{193, 190, 66}},
	{ID: 1009, Name: "New Yeller", Color: RGB{255, 255, 0}},
	{ID: 1010, Name: "Really blue", Color: RGB{0, 0, 255}},
	{ID: 1011, Name: "Navy blue", Color: RGB{0, 32, 96}},
	{ID: 1012, Name: "Deep blue", Color: RGB{33, 84, 185}},
	{ID: 1013, Name: "Cyan", Color: RGB{4, 175, 236}},
	{ID: 1014, Name: "CGA brown", Color: RGB{170, 85, 0}},
	{ID: 1015, Name: "Magenta", Color: RGB{170, 0, 170}},
	{ID: 1016, Name: "Pink", Color: RGB{255, 102, 204}},
	{ID: 1017, Name: "Deep orange", Color: RGB{255, 175, 0}},
	{ID: 1018, Name: "Teal", Color: RGB{18, 238, 212}},
	{ID: 1019, Name: "Toothpaste", Color: RGB{0, 255, 255}},
	{ID: 1020, Name: "Lime green", Color: RGB{0, 255, 0}},
	{ID: 1021, Name: "Camo", Color: RGB{58, 125, 21}},
	{ID: 1022, Name: "Grime", Color: RGB{127, 142, 100}},
	{ID: 1023, Name: "Lavender", Color: RGB{140, 91, 159}},
	{ID: 1024, Name: "Pastel light blue", Color: RGB{175, 221, 255}},
	{ID: 1025, Name: "Pastel orange", Color: RGB{255, 201, 201}},
	{ID: 1026, Name: "Pastel violet", Color: RGB{177, 167, 255}},
	{ID: 1027, Name: "Pastel blue-green", Color: RGB{159, 243, 233}},
	{ID: 1028, Name: "Pastel green", Color: RGB{204, 255, 204}},
	{ID: 1029, Name: "Pastel yellow", Color: RGB{255, 255, 204}},
	{ID: 1030, Name: "Pastel brown", Color: RGB{255, 204, 153}},
	{ID: 1031, Name: "Royal purple", Color: RGB{98, 37, 209}},
	{ID: 1032, Name: "Hot pink", Color: RGB{255, 0, 191}},
}
