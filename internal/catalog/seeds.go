package catalog

// DefaultThemeID is the theme a canvas claim falls back to.
const DefaultThemeID = "obsidian-signal"

var baseThemes = []ThemeSeed{
	{ID: "obsidian-signal", Name: "Obsidian Signal", Description: "Matte black canvas with a single electric accent line.", Accent: "#7CFFCB", Preview: "/themes/obsidian-signal.png", Atmosphere: "minimal"},
	{ID: "solar-flare", Name: "Solar Flare", Description: "Warm gradients that burn from amber into crimson.", Accent: "#FF7A18", Preview: "/themes/solar-flare.png", Atmosphere: "energetic"},
	{ID: "glacier-glass", Name: "Glacier Glass", Description: "Frosted panels over a cold blue field.", Accent: "#8FD3FF", Preview: "/themes/glacier-glass.png", Atmosphere: "calm"},
	{ID: "neon-arcade", Name: "Neon Arcade", Description: "Scanlines, pixel type and hot magenta glow.", Accent: "#FF2FD6", Preview: "/themes/neon-arcade.png", Atmosphere: "playful"},
	{ID: "paper-press", Name: "Paper Press", Description: "Off-white stock with letterpress serif headings.", Accent: "#1F1F1F", Preview: "/themes/paper-press.png", Atmosphere: "editorial"},
	{ID: "moss-garden", Name: "Moss Garden", Description: "Soft greens and rounded cards with organic texture.", Accent: "#5C8A4F", Preview: "/themes/moss-garden.png", Atmosphere: "calm"},
	{ID: "chrome-drift", Name: "Chrome Drift", Description: "Liquid metal highlights on a graphite base.", Accent: "#C9CED6", Preview: "/themes/chrome-drift.png", Atmosphere: "futuristic"},
	{ID: "midnight-jazz", Name: "Midnight Jazz", Description: "Deep navy with brass accents and smoky overlays.", Accent: "#D4A64A", Preview: "/themes/midnight-jazz.png", Atmosphere: "moody"},
	{ID: "candy-pop", Name: "Candy Pop", Description: "Bubblegum pastels and bouncy pill buttons.", Accent: "#FF8AC7", Preview: "/themes/candy-pop.png", Atmosphere: "playful"},
	{ID: "terminal-green", Name: "Terminal Green", Description: "Monospace everything on a phosphor screen.", Accent: "#39FF14", Preview: "/themes/terminal-green.png", Atmosphere: "technical"},
	{ID: "desert-dune", Name: "Desert Dune", Description: "Sand tones with long shadows and wide spacing.", Accent: "#C2894B", Preview: "/themes/desert-dune.png", Atmosphere: "warm"},
	{ID: "aurora-veil", Name: "Aurora Veil", Description: "Shifting teal and violet ribbons behind clear type.", Accent: "#6EE7F9", Preview: "/themes/aurora-veil.png", Atmosphere: "dreamy"},
	{ID: "brutalist-block", Name: "Brutalist Block", Description: "Raw grids, heavy borders and unapologetic type.", Accent: "#FFE600", Preview: "/themes/brutalist-block.png", Atmosphere: "bold"},
	{ID: "sakura-mist", Name: "Sakura Mist", Description: "Blush petals drifting over a pale canvas.", Accent: "#F7A8C4", Preview: "/themes/sakura-mist.png", Atmosphere: "soft"},
	{ID: "carbon-fiber", Name: "Carbon Fiber", Description: "Woven dark texture with racing red details.", Accent: "#E10600", Preview: "/themes/carbon-fiber.png", Atmosphere: "bold"},
	{ID: "ocean-depth", Name: "Ocean Depth", Description: "Layered blues that darken toward the fold.", Accent: "#00B4D8", Preview: "/themes/ocean-depth.png", Atmosphere: "calm"},
	{ID: "retro-sunset", Name: "Retro Sunset", Description: "Eighties horizon stripes and chrome lettering.", Accent: "#FF5F6D", Preview: "/themes/retro-sunset.png", Atmosphere: "nostalgic"},
	{ID: "graphite-grid", Name: "Graphite Grid", Description: "Blueprint lines on charcoal with precise spacing.", Accent: "#9AA5B1", Preview: "/themes/graphite-grid.png", Atmosphere: "technical"},
	{ID: "velvet-noir", Name: "Velvet Noir", Description: "Plum shadows and a single spotlight accent.", Accent: "#9B5DE5", Preview: "/themes/velvet-noir.png", Atmosphere: "moody"},
	{ID: "citrus-splash", Name: "Citrus Splash", Description: "Lime and tangerine blocks with crisp white space.", Accent: "#B8F400", Preview: "/themes/citrus-splash.png", Atmosphere: "energetic"},
	{ID: "ink-wash", Name: "Ink Wash", Description: "Brushed monochrome strokes on rice paper.", Accent: "#2B2B2B", Preview: "/themes/ink-wash.png", Atmosphere: "editorial"},
	{ID: "holo-foil", Name: "Holo Foil", Description: "Iridescent foil sheen that shifts with the cursor.", Accent: "#A0E9FF", Preview: "/themes/holo-foil.png", Atmosphere: "futuristic"},
	{ID: "forest-cabin", Name: "Forest Cabin", Description: "Pine greens, wood grain and lantern warmth.", Accent: "#2D6A4F", Preview: "/themes/forest-cabin.png", Atmosphere: "warm"},
	{ID: "static-bloom", Name: "Static Bloom", Description: "Grainy noise blooming into saturated color.", Accent: "#FF6B35", Preview: "/themes/static-bloom.png", Atmosphere: "experimental"},
}

var templates = []TemplateSeed{
	{ID: "founder-card", Name: "Founder Card", Description: "A single card with avatar, bio and three links.", Accent: "#7CFFCB", Preview: "/templates/founder-card.png", Category: "profile"},
	{ID: "revenue-wall", Name: "Revenue Wall", Description: "Headline MRR with a sparkline and milestone list.", Accent: "#FF7A18", Preview: "/templates/revenue-wall.png", Category: "metrics"},
	{ID: "build-log", Name: "Build Log", Description: "Timeline of shipped updates and streak counter.", Accent: "#39FF14", Preview: "/templates/build-log.png", Category: "timeline"},
	{ID: "product-shelf", Name: "Product Shelf", Description: "Grid of projects with category chips.", Accent: "#8FD3FF", Preview: "/templates/product-shelf.png", Category: "portfolio"},
	{ID: "signal-board", Name: "Signal Board", Description: "Selected signals rendered as tiles above the fold.", Accent: "#FF2FD6", Preview: "/templates/signal-board.png", Category: "profile"},
	{ID: "for-sale-listing", Name: "For Sale Listing", Description: "Asking price, margin and traction for acquirers.", Accent: "#D4A64A", Preview: "/templates/for-sale-listing.png", Category: "marketplace"},
	{ID: "minimal-link-hub", Name: "Minimal Link Hub", Description: "Name, one line and a stack of links.", Accent: "#1F1F1F", Preview: "/templates/minimal-link-hub.png", Category: "links"},
	{ID: "stack-showcase", Name: "Stack Showcase", Description: "Tech stack logos with a short build story.", Accent: "#9AA5B1", Preview: "/templates/stack-showcase.png", Category: "portfolio"},
}
