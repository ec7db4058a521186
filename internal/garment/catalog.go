package garment

import "github.com/dotcommander/fitcheck/internal/category"

// descriptions maps dimension key, then category name, then garment type to
// the on-body description for that combination.
var descriptions = map[string]map[string]map[Type]string{
	category.Chest: {
		"Restrictive / Non-Viable": {
			TShirt:           "Must stretch to fit; sits under constant tension across the chest.",
			Polo:             "Pulls across the chest and placket; restrictive during movement.",
			ButtonUp:         "Chest is smaller than body; buttoning comfortably is unlikely.",
			SweatshirtHoodie: "Tight through the chest with little room for movement or layering.",
			Sweater:          "Stretches tightly across the chest; drape is reduced.",
			LightJacket:      "Restrictive across the chest; limited comfort and mobility.",
			HeavyJacket:      "Structure prevents stretch; closure and layering are difficult.",
		},
		"Ultra Close Fit": {
			TShirt:           "Body-hugging tee; chest contours clearly visible.",
			Polo:             "Very fitted through chest and shoulders.",
			ButtonUp:         "Tight across chest; movement creates visible tension.",
			SweatshirtHoodie: "Snug upper body; little room underneath.",
			Sweater:          "Clings depending on knit; little drape.",
			LightJacket:      "Tight fit; limited mobility.",
			HeavyJacket:      "Atypical; restricts layering and movement.",
		},
		"Close Fit": {
			TShirt:           "Clean, fitted tee with minimal excess fabric.",
			Polo:             "Sharp, structured polo fit.",
			ButtonUp:         "Slim shirt silhouette; chest stays close.",
			SweatshirtHoodie: "Fitted hoodie with reduced volume.",
			Sweater:          "Close knit fit with restrained drape.",
			LightJacket:      "Close jacket fit; layering limited.",
			HeavyJacket:      "Close coat fit; light layering only.",
		},
		"Neutral Fit": {
			TShirt:           "Standard modern tee fit.",
			Polo:             "Standard polo fit.",
			ButtonUp:         "Classic shirt silhouette; easy movement.",
			SweatshirtHoodie: "Typical hoodie shape; natural volume.",
			Sweater:          "Standard sweater fit with modest drape.",
			LightJacket:      "Standard jacket fit; normal layering.",
			HeavyJacket:      "Typical coat fit with light layering.",
		},
		"Relaxed Fit": {
			TShirt:           "Relaxed tee with visible drape.",
			Polo:             "Relaxed polo with easy shape.",
			ButtonUp:         "Casual shirt with clear chest ease.",
			SweatshirtHoodie: "Relaxed hoodie; fuller upper-body volume.",
			Sweater:          "Soft, relaxed knit drape.",
			LightJacket:      "Relaxed jacket or overshirt fit.",
			HeavyJacket:      "Relaxed coat with added space.",
		},
		"Oversized Fit": {
			TShirt:           "Oversized tee with pronounced width.",
			Polo:             "Fashion-forward oversized polo.",
			ButtonUp:         "Oversized shirt with broad chest.",
			SweatshirtHoodie: "Oversized hoodie with strong volume.",
			Sweater:          "Roomy, expressive knit silhouette.",
			LightJacket:      "Oversized jacket with broad shape.",
			HeavyJacket:      "Oversized outerwear silhouette.",
		},
		"Extreme Oversized": {
			TShirt:           "Very oversized tee; dramatic width.",
			Polo:             "Rare; intentionally extreme.",
			ButtonUp:         "Highly oversized shirt with heavy drape.",
			SweatshirtHoodie: "Streetwear-scale oversized hoodie.",
			Sweater:          "Dramatic knit volume.",
			LightJacket:      "Very oversized jacket.",
			HeavyJacket:      "Wide, expressive oversized coat.",
		},
	},
	category.FrontLength: {
		"High-Cropped": {
			TShirt:           "High-cropped tee",
			Polo:             "High-cropped polo",
			ButtonUp:         "High-cropped shirt",
			SweatshirtHoodie: "Cropped sweatshirt body",
			Sweater:          "Cropped knit",
			LightJacket:      "Short jacket body above waist",
			HeavyJacket:      "Minimal torso coverage",
		},
		"Cropped": {
			TShirt:           "Cropped tee",
			Polo:             "Cropped polo",
			ButtonUp:         "Cropped shirt",
			SweatshirtHoodie: "Slightly cropped hoodie",
			Sweater:          "Cropped sweater",
			LightJacket:      "Ends near waistband",
			HeavyJacket:      "Ends near waist",
		},
		"Aligned": {
			TShirt:           "Tee hem meets waistband",
			Polo:             "Polo hem meets waistband",
			ButtonUp:         "Shirt hem meets waistband",
			SweatshirtHoodie: "Hoodie body meets waistband",
			Sweater:          "Knit hem meets waistband",
			LightJacket:      "Jacket ends at waistband",
			HeavyJacket:      "Upper-hip coverage",
		},
		"Extended": {
			TShirt:           "Extended-length tee",
			Polo:             "Extended polo",
			ButtonUp:         "Extended shirt body",
			SweatshirtHoodie: "Longer hoodie body",
			Sweater:          "Extended knit drape",
			LightJacket:      "Hip-length jacket",
			HeavyJacket:      "Hip-length outerwear",
		},
		"Longline": {
			TShirt:           "Longline tee",
			Polo:             "Long polo",
			ButtonUp:         "Long shirt body",
			SweatshirtHoodie: "Long hoodie body",
			Sweater:          "Long sweater silhouette",
			LightJacket:      "Upper-thigh jacket",
			HeavyJacket:      "Thigh-level coverage",
		},
		"Extra-Long": {
			TShirt:           "Extra-long / tunic tee",
			Polo:             "Extra-long polo",
			ButtonUp:         "Tunic-length shirt",
			SweatshirtHoodie: "Very long hoodie",
			Sweater:          "Extra-long knit",
			LightJacket:      "Mid-thigh or lower",
			HeavyJacket:      "Parka-like length",
		},
	},
	category.Sleeve: {
		"Noticeably Short": {
			TShirt:           "Wrist and upper forearm visible; cropped visual line.",
			Polo:             "Wrist exposed; sleeve ends high.",
			ButtonUp:         "Wrist + some forearm visible while arm is lowered.",
			SweatshirtHoodie: "Wrist exposed; sleeve line sits high on arm.",
			Sweater:          "Wrist exposed; sleeve ends visibly above wrist.",
			LightJacket:      "Wrist exposed; sleeve does not meet glove/hand area.",
			HeavyJacket:      "Wrist exposed; sleeve sits above outerwear coverage level.",
		},
		"Slightly Short": {
			TShirt:           "Wrist visible; minor gap between cuff and wrist bone.",
			Polo:             "Wrist clearly visible.",
			ButtonUp:         "Wrist visible; sleeve ends slightly above wrist.",
			SweatshirtHoodie: "Wrist visible; sleeve sits just short of wrist.",
			Sweater:          "Wrist visible; subtle short appearance.",
			LightJacket:      "Wrist visible; does not reach hand.",
			HeavyJacket:      "Wrist visible; outerwear sleeve sits above wrist line.",
		},
		"Aligned": {
			TShirt:           "Cuff meets wrist; no coverage.",
			Polo:             "Wrist line fully matched.",
			ButtonUp:         "Standard wrist-level sleeve position.",
			SweatshirtHoodie: "Sleeve meets wrist; no pooling.",
			Sweater:          "Sleeve meets wrist; no extension onto hand.",
			LightJacket:      "Sleeve sits at wrist; stable visual line.",
			HeavyJacket:      "Sleeve reaches wrist bone; hand uncovered.",
		},
		"Slightly Long": {
			TShirt:           "Cuff touches top of hand; relaxed appearance.",
			Polo:             "Light hand contact.",
			ButtonUp:         "Sleeve contacts top of hand; slight folding at cuff.",
			SweatshirtHoodie: "Cuff extends onto hand; small pooling or bunching.",
			Sweater:          "Cuff overlaps hand slightly; soft drape.",
			LightJacket:      "Cuff overlaps hand; creates a longer sleeve line.",
			HeavyJacket:      "Sleeve overlaps top of hand; increases coverage.",
		},
		"Long": {
			TShirt:           "Cuff covers thumb base; elongated silhouette.",
			Polo:             "Hand partially covered.",
			ButtonUp:         "Hand partially covered; visible stacking.",
			SweatshirtHoodie: "Cuff covers thumb base; pooling increases.",
			Sweater:          "Cuff covers thumb base; more pronounced drape.",
			LightJacket:      "Cuff extends onto hand; elongated sleeve profile.",
			HeavyJacket:      "Additional hand coverage; extended sleeve line.",
		},
		"Very Long": {
			TShirt:           "Sleeve covers thumb joint/knuckles; extended silhouette.",
			Polo:             "Cuff sits deep on hand.",
			ButtonUp:         "Sleeve covers part of hand entirely; strong oversized effect.",
			SweatshirtHoodie: "Sleeve covers thumb joint; heavy pooling possible.",
			Sweater:          "Sleeve extends well onto hand; long-drape silhouette.",
			LightJacket:      "Sleeve covers hand significantly; extended sleeve shape.",
			HeavyJacket:      "Sleeve extends across hand; maximum coverage.",
		},
	},
	category.Shoulder: {
		"Narrow": {
			TShirt:           "Produces a closer tee silhouette with a defined shoulder line; less relaxed drape.",
			Polo:             "Neat, close shoulder; minimal drape.",
			ButtonUp:         "Feels fitted through the shoulders; reaching forward may feel more limited.",
			SweatshirtHoodie: "Creates a more structured upper fit through the shoulders, with less natural slouch than typical hoodies.",
			Sweater:          "Produces a more controlled drape through the shoulders, with the effect varying by knit density.",
			LightJacket:      "Reduces layering room and may limit shoulder mobility, depending on construction.",
			HeavyJacket:      "Can feel structured and restrictive through the shoulders, especially when layered underneath.",
		},
		"Slightly Narrow": {
			TShirt:           "Cleaner tee silhouette with subtle shoulder definition; still relaxed in wear.",
			Polo:             "Neat, shaped shoulder; controlled but comfortable drape.",
			ButtonUp:         "Clean, tailored shoulder line; movement remains comfortable.",
			SweatshirtHoodie: "Slightly more structured than typical hoodies; reduced slouch without tightness.",
			Sweater:          "More controlled drape through the shoulders; effect varies by knit weight.",
			LightJacket:      "Cleaner shoulder shape; light reduction in layering room.",
			HeavyJacket:      "Structured shoulder presence; still wearable for layering with care.",
		},
		"Aligned": {
			TShirt:           "Standard tee silhouette with natural shoulder drape.",
			Polo:             "Balanced polo shape with clean, comfortable lines.",
			ButtonUp:         "Classic shirt shoulder alignment with natural movement.",
			SweatshirtHoodie: "Typical hoodie drape with a natural amount of slouch.",
			Sweater:          "Even knit drape without added tension or looseness.",
			LightJacket:      "Standard jacket shoulder with normal layering capacity.",
			HeavyJacket:      "Traditional coat shoulder structure with predictable movement and layering.",
		},
		"Slightly Dropped": {
			TShirt:           "Relaxed tee shape with softer shoulder slope; still proportional.",
			Polo:             "Slightly more casual polo silhouette with added ease.",
			ButtonUp:         "Casual shirt shoulder with visible softness; less formal structure.",
			SweatshirtHoodie: "Common hoodie fit; relaxed shoulder line without oversizing.",
			Sweater:          "Softer knit drape through the shoulders; relaxed appearance.",
			LightJacket:      "Casual jacket shape with easier movement and mild looseness.",
			HeavyJacket:      "Relaxed outerwear shoulder; increased ease without a boxy feel.",
		},
		"Dropped": {
			TShirt:           "Boxier tee silhouette with a visible shoulder drop and relaxed drape.",
			Polo:             "Rare but produces a very casual, relaxed polo shape.",
			ButtonUp:         "Casual, oversized shirt appearance with softened structure.",
			SweatshirtHoodie: "Common relaxed hoodie fit with pronounced shoulder drop.",
			Sweater:          "Relaxed knit silhouette with noticeable shoulder drape.",
			LightJacket:      "Casual jacket shape with a looser, less structured upper body.",
			HeavyJacket:      "Relaxed outerwear silhouette with added room and softer shoulder definition.",
		},
		"Heavily Dropped": {
			TShirt:           "Very oversized tee with a pronounced shoulder drop and wide silhouette.",
			Polo:             "Extremely rare; produces an intentionally oversized polo shape.",
			ButtonUp:         "Fashion-forward oversized shirt with dramatic looseness.",
			SweatshirtHoodie: "Common in oversized hoodies; strong shoulder drop with long-appearing sleeves.",
			Sweater:          "Dramatic knit drape with a wide, relaxed upper body.",
			LightJacket:      "Oversized jacket silhouette with minimal shoulder structure.",
			HeavyJacket:      "Very oversized outerwear with a broad, relaxed shoulder profile.",
		},
	},
	category.WaistFixed: {
		"Restrictive / Non-Viable": {
			Jeans:      "Too small",
			Chinos:     "Too small",
			Trousers:   "Too small",
			Sweatpants: "Elastic may still stretch, but feels overly tight",
			Joggers:    "Restrictive",
			Shorts:     "Too small",
			Cargos:     "Too small",
		},
		"Snug Waist": {
			Jeans:      "Snug",
			Chinos:     "Snug",
			Trousers:   "Tailored-snug",
			Sweatpants: "Firm hold",
			Joggers:    "Athletic-snug",
			Shorts:     "Snug",
			Cargos:     "Snug",
		},
		"Aligned Waist": {
			Jeans:      "Standard fit",
			Chinos:     "Standard fit",
			Trousers:   "Classic waist fit",
			Sweatpants: "Comfortable hold",
			Joggers:    "Typical jogger fit",
			Shorts:     "Standard",
			Cargos:     "Standard",
		},
		"Relaxed Waist": {
			Jeans:      "Relaxed",
			Chinos:     "Relaxed",
			Trousers:   "Relaxed waist",
			Sweatpants: "Easy fit",
			Joggers:    "Loose",
			Shorts:     "Relaxed",
			Cargos:     "Relaxed",
		},
		"Oversized Waist": {
			Jeans:      "Oversized",
			Chinos:     "Oversized",
			Trousers:   "Oversized",
			Sweatpants: "May sag despite elastic",
			Joggers:    "Oversized",
			Shorts:     "Oversized",
			Cargos:     "Oversized",
		},
	},
	category.Thigh: {
		"Restrictive / Non-Viable": {
			Jeans:      "Restrictive",
			Chinos:     "Restrictive",
			Trousers:   "Restrictive",
			Sweatpants: "Restrictive despite stretch",
			Joggers:    "Restrictive",
			Shorts:     "Restrictive",
			Cargos:     "Restrictive",
		},
		"Close Thigh": {
			Jeans:      "Close fit",
			Chinos:     "Close fit",
			Trousers:   "Tailored-close",
			Sweatpants: "Close through thigh",
			Joggers:    "Athletic-close",
			Shorts:     "Close fit",
			Cargos:     "Close fit",
		},
		"Regular Thigh": {
			Jeans:      "Standard",
			Chinos:     "Standard",
			Trousers:   "Regular",
			Sweatpants: "Standard sweatpant fit",
			Joggers:    "Athletic regular",
			Shorts:     "Standard",
			Cargos:     "Regular utility",
		},
		"Oversized Thigh": {
			Jeans:      "Oversized",
			Chinos:     "Oversized",
			Trousers:   "Wide / oversized",
			Sweatpants: "Oversized sweatpant",
			Joggers:    "Oversized jogger",
			Shorts:     "Wide",
			Cargos:     "Oversized cargo",
		},
	},
	category.Inseam: {
		"Very Short / Cropped": {
			Jeans:      "Cropped",
			Chinos:     "Cropped",
			Trousers:   "Short Trouser Length",
			Sweatpants: "Cropped",
			Joggers:    "High-Ankle",
			Shorts:     "N/A",
			Cargos:     "Cropped",
		},
		"Short Length": {
			Jeans:      "Slight Crop",
			Chinos:     "Slight Crop",
			Trousers:   "Subtle Short Length",
			Sweatpants: "Slight Crop",
			Joggers:    "Slight Crop",
			Shorts:     "N/A",
			Cargos:     "Slight Crop",
		},
		"Aligned Length": {
			Jeans:      "True Length",
			Chinos:     "True Length",
			Trousers:   "Clean Trouser Length",
			Sweatpants: "Standard",
			Joggers:    "Standard",
			Shorts:     "N/A",
			Cargos:     "Aligned",
		},
		"Long Length": {
			Jeans:      "Light Stack",
			Chinos:     "Light Break",
			Trousers:   "Light Trouser Break",
			Sweatpants: "Light Stack",
			Joggers:    "Light Stack",
			Shorts:     "N/A",
			Cargos:     "Light Stack",
		},
		"Extended Length": {
			Jeans:      "Stacked",
			Chinos:     "Pronounced Break",
			Trousers:   "Pronounced Trouser Break",
			Sweatpants: "Stacked",
			Joggers:    "Stacked",
			Shorts:     "N/A",
			Cargos:     "Stacked",
		},
		"Very Long / Pooled": {
			Jeans:      "Heavy Stack",
			Chinos:     "Extended Length",
			Trousers:   "Extended Trouser Length",
			Sweatpants: "Heavy Pooling",
			Joggers:    "Heavy Pooling",
			Shorts:     "N/A",
			Cargos:     "Heavy Stack",
		},
	},
	category.Rise: {
		"Short Rise": {
			Jeans:      "Short Rise",
			Chinos:     "Short Rise",
			Trousers:   "Low Depth",
			Sweatpants: "Short Rise",
			Joggers:    "Short Rise",
			Shorts:     "Short Rise",
			Cargos:     "Short Rise",
		},
		"Moderate Rise": {
			Jeans:      "Moderate Rise",
			Chinos:     "Moderate Rise",
			Trousers:   "Standard Depth",
			Sweatpants: "Standard Rise",
			Joggers:    "Standard Rise",
			Shorts:     "Moderate Rise",
			Cargos:     "Moderate Rise",
		},
		"Extended Rise": {
			Jeans:      "Extended Rise",
			Chinos:     "Extended Rise",
			Trousers:   "Extended Depth",
			Sweatpants: "Extended Rise",
			Joggers:    "Extended Rise",
			Shorts:     "Extended Rise",
			Cargos:     "Extended Rise",
		},
		"Very Long Rise": {
			Jeans:      "Very Long Rise",
			Chinos:     "Very Long Rise",
			Trousers:   "Deep Depth",
			Sweatpants: "Very Long Rise",
			Joggers:    "Very Long Rise",
			Shorts:     "Very Long Rise",
			Cargos:     "Very Long Rise",
		},
	},
	category.LegOpening: {
		"Strong Taper": {
			Jeans:      "Strong taper",
			Chinos:     "Strong taper",
			Trousers:   "Strong taper",
			Sweatpants: "Narrow hem",
			Joggers:    "Narrow jogger",
			Cargos:     "Narrow taper",
		},
		"Tapered": {
			Jeans:      "Tapered",
			Chinos:     "Tapered",
			Trousers:   "Tapered",
			Sweatpants: "Standard hem",
			Joggers:    "Athletic taper",
			Cargos:     "Tapered",
		},
		"Straight": {
			Jeans:      "Straight",
			Chinos:     "Straight",
			Trousers:   "Straight",
			Sweatpants: "Straight",
			Joggers:    "Straight",
			Cargos:     "Straight",
		},
		"Open / Wide": {
			Jeans:      "Open",
			Chinos:     "Open",
			Trousers:   "Open",
			Sweatpants: "Open",
			Joggers:    "Open",
			Cargos:     "Open",
		},
	},
}
