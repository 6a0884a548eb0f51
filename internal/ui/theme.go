package ui

// DefaultCSS styles the menu panel and the inspector. A user stylesheet loaded with LoadCSS replaces it.
const DefaultCSS = `
.menu-panel { background: #1e1e1ef0; border: #3a3a3a; left: 16; top: 16; width: 320; }
.menu-title { color: #e0e0e0; left: 16; top: 16; width: 320; height: 26; padding: 6; font-size: 18; }
.menu-header { color: #9a9a9a; left: 16; top: 16; width: 320; height: 26; padding: 6; font-size: 16; }
.menu-submenu { color: #f0f0f0; left: 16; top: 16; width: 320; height: 26; padding: 6; font-size: 18; }
.menu-button { background: #2b2b2b; color: #f5c16c; left: 16; top: 16; width: 300; height: 24; padding: 4; font-size: 18; }

.inspector { background: #1e1e1ef0; border: #3a3a3a; left: 100%; top: 16; width: 340; height: 210; }
.inspector-title, .inspector-name, .inspector-kind, .inspector-position,
.inspector-scale, .inspector-source, .inspector-count { color: #e0e0e0; left: 100%; width: 340; height: 26; padding: 6; font-size: 16; }
.inspector-title { top: 16; color: #f5c16c; }
.inspector-name { top: 42; }
.inspector-kind { top: 68; }
.inspector-position { top: 94; }
.inspector-scale { top: 120; }
.inspector-source { top: 146; }
.inspector-count { top: 172; }
`
