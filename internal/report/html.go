package report

import (
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"time"

	"github.com/saaga0h/dmx-palette/internal/grid"
)

// swatchView is the per-entry data exposed to the HTML template. The
// data-* attributes drive the client-side filters.
type swatchView struct {
	Index          int
	Name           string
	Filename       string
	R, G, B, W, A  int
	SR, SG, SB     int
	Brightness     int
	BrightnessName string
	ColorGroup     string
	Category       string
	Temperature    string
}

// dotView is one point on the color-wheel chart, in page pixels.
type dotView struct {
	Index      int
	PX, PY     float64
	SR, SG, SB int
	Title      string
}

type channelFilter struct {
	ID    string
	Label string
}

type pageView struct {
	Entries        []swatchView
	ByBrightness   []swatchView
	Dots           []dotView
	ChannelFilters []channelFilter
	RunID          string
	GeneratedAt    string
}

var channelFilters = []channelFilter{
	{"r", "R"}, {"g", "G"}, {"b", "B"}, {"w", "W"}, {"a", "A"},
}

// WriteHTML renders the interactive preview page: a filterable grid of
// swatches in index order and brightness order, plus a polar color-wheel
// chart plotting every entry's wheel coordinate.
func WriteHTML(path, runID string, entries, byBrightness []grid.Entry, logger *slog.Logger) error {
	page := pageView{
		Entries:        make([]swatchView, 0, len(entries)),
		ByBrightness:   make([]swatchView, 0, len(byBrightness)),
		Dots:           make([]dotView, 0, len(entries)),
		ChannelFilters: channelFilters,
		RunID:          runID,
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	for _, e := range entries {
		page.Entries = append(page.Entries, newSwatchView(e))

		// Wheel coordinates are in [-1,1]; the chart is a 400px circle with
		// a 180px usable radius. The page y-axis points down.
		w := e.Result.Wheel
		page.Dots = append(page.Dots, dotView{
			Index: e.Index,
			PX:    200 + w.X*180,
			PY:    200 - w.Y*180,
			SR:    e.Result.Color.R,
			SG:    e.Result.Color.G,
			SB:    e.Result.Color.B,
			Title: fmt.Sprintf("#%04d - %s - R:%d G:%d B:%d W:%d A:%d",
				e.Index, e.Result.Classification.Label(),
				e.Channels.R, e.Channels.G, e.Channels.B, e.Channels.W, e.Channels.A),
		})
	}

	for _, e := range byBrightness {
		page.ByBrightness = append(page.ByBrightness, newSwatchView(e))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML report: %w", err)
	}
	defer f.Close()

	if err := pageTemplate.Execute(f, page); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}

	logger.Info("Wrote HTML preview",
		"path", path,
		"entries", len(entries))

	return nil
}

func newSwatchView(e grid.Entry) swatchView {
	return swatchView{
		Index:          e.Index,
		Name:           e.Name,
		Filename:       SwatchFilename(e),
		R:              e.Channels.R,
		G:              e.Channels.G,
		B:              e.Channels.B,
		W:              e.Channels.W,
		A:              e.Channels.A,
		SR:             e.Result.Color.R,
		SG:             e.Result.Color.G,
		SB:             e.Result.Color.B,
		Brightness:     int(e.Result.Brightness),
		BrightnessName: e.Result.Brightness.Name(),
		ColorGroup:     e.Result.Classification.Label(),
		Category:       string(e.Result.Classification.Category),
		Temperature:    string(e.Result.Temperature),
	}
}

var pageTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>DMX Color Swatches</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .swatch {
            display: inline-block;
            margin: 5px;
            text-align: center;
            vertical-align: top;
            width: 150px;
            position: relative;
        }
        .swatch img { border: 1px solid #ccc; width: 40px; height: 40px; }
        .swatch p { font-size: 12px; margin: 2px 0; overflow: hidden; text-overflow: ellipsis; }
        .controls { margin-bottom: 20px; display: flex; flex-wrap: wrap; align-items: center; gap: 10px; }
        .filter-group { display: flex; align-items: center; gap: 5px; }
        .filter-label { font-weight: bold; }
        .section { margin-bottom: 30px; }
        .dmx-values { font-weight: bold; color: #333; }
        .color-info { font-style: italic; color: #666; }
        select { padding: 4px; border-radius: 4px; }
        input[type="text"] { padding: 5px; width: 200px; border-radius: 4px; border: 1px solid #ccc; }
        button { padding: 5px 10px; background-color: #f0f0f0; border: 1px solid #ccc; border-radius: 4px; cursor: pointer; }
        button:hover { background-color: #e0e0e0; }
        .view-toggle { display: flex; justify-content: center; margin: 10px 0; }
        .view-toggle button { margin: 0 5px; }
        .active-view { background-color: #ddd; font-weight: bold; }
        .color-wheel {
            position: relative;
            width: 400px;
            height: 400px;
            margin: 0 auto;
            border: 1px solid #ccc;
            border-radius: 50%;
            background: radial-gradient(circle, white 0%, rgba(255,255,255,0) 70%),
                        conic-gradient(red 0deg, yellow 60deg, lime 120deg,
                                       cyan 180deg, blue 240deg, magenta 300deg, red 360deg);
        }
        .color-dot {
            position: absolute;
            width: 10px;
            height: 10px;
            border-radius: 50%;
            transform: translate(-50%, -50%);
            border: 1px solid rgba(0,0,0,0.3);
        }
        .color-dot:hover { z-index: 100; width: 14px; height: 14px; box-shadow: 0 0 5px rgba(0,0,0,0.5); }
        .favorite-btn {
            position: absolute;
            top: 5px;
            right: 5px;
            background: none;
            border: none;
            font-size: 18px;
            cursor: pointer;
            color: #ccc;
            padding: 0;
            width: 24px;
            height: 24px;
            line-height: 24px;
        }
        .favorite-btn:hover, .favorite-btn.active { color: #ffcc00; }
        .theme-toggle { position: absolute; top: 20px; right: 20px; }
        .dark-mode { background-color: #222; color: #eee; }
        .dark-mode .swatch { background-color: #333; }
        .dark-mode button { background-color: #444; color: #eee; border-color: #555; }
        .dark-mode button:hover { background-color: #555; }
        .dark-mode select,
        .dark-mode input[type="text"] { background-color: #444; color: #eee; border-color: #555; }
        footer { margin-top: 30px; font-size: 11px; color: #999; }
    </style>
    <script>
        let favorites = [];

        function loadFavorites() {
            const stored = localStorage.getItem('dmxFavorites');
            if (stored) {
                favorites = JSON.parse(stored);
                updateFavoriteButtons();
            }
        }

        function saveFavorites() {
            localStorage.setItem('dmxFavorites', JSON.stringify(favorites));
        }

        function toggleFavorite(index) {
            const idx = favorites.indexOf(index);
            if (idx === -1) {
                favorites.push(index);
            } else {
                favorites.splice(idx, 1);
            }
            saveFavorites();
            updateFavoriteButtons();
            applyFilters();
        }

        function updateFavoriteButtons() {
            document.querySelectorAll('.favorite-btn').forEach(btn => {
                const index = btn.getAttribute('data-index');
                if (favorites.includes(index)) {
                    btn.innerHTML = '&#9733;';
                    btn.classList.add('active');
                } else {
                    btn.innerHTML = '&#9734;';
                    btn.classList.remove('active');
                }
            });
        }

        function toggleDarkMode() {
            document.body.classList.toggle('dark-mode');
            const isDark = document.body.classList.contains('dark-mode');
            localStorage.setItem('dmxDarkMode', isDark ? 'true' : 'false');
            document.getElementById('dark-mode-toggle').textContent = isDark ? 'Light Mode' : 'Dark Mode';
        }

        function applyFilters() {
            const searchTerm = document.getElementById('search').value.toLowerCase();
            const channelFilters = ['r', 'g', 'b', 'w', 'a', 'brightness'].map(id => ({
                id: id,
                value: document.getElementById('filter-' + id).value
            }));
            const colorValue = document.getElementById('filter-color').value;
            const categoryValue = document.getElementById('filter-category').value;
            const favoritesOnly = document.getElementById('filter-favorites').checked;

            let visibleCount = 0;
            const swatches = document.querySelectorAll('.swatch');

            swatches.forEach(swatch => {
                let visible = true;

                if (searchTerm && !swatch.getAttribute('data-name').toLowerCase().includes(searchTerm)) {
                    visible = false;
                }
                channelFilters.forEach(f => {
                    if (f.value !== 'any' && swatch.getAttribute('data-' + f.id) !== f.value) {
                        visible = false;
                    }
                });
                if (colorValue !== 'any' && !swatch.getAttribute('data-color-group').includes(colorValue)) {
                    visible = false;
                }
                if (categoryValue !== 'any' && swatch.getAttribute('data-category') !== categoryValue) {
                    visible = false;
                }
                if (favoritesOnly && !favorites.includes(swatch.getAttribute('data-index'))) {
                    visible = false;
                }

                swatch.style.display = visible ? 'inline-block' : 'none';
                if (visible) visibleCount++;

                const dot = document.getElementById('dot-' + swatch.getAttribute('data-index'));
                if (dot) dot.style.display = visible ? 'block' : 'none';
            });

            document.getElementById('filter-status').textContent =
                'Showing ' + visibleCount + ' of ' + swatches.length + ' swatches';
        }

        function resetFilters() {
            document.getElementById('search').value = '';
            ['r', 'g', 'b', 'w', 'a', 'brightness', 'color', 'category'].forEach(id => {
                document.getElementById('filter-' + id).value = 'any';
            });
            document.getElementById('filter-favorites').checked = false;
            applyFilters();
        }

        function switchView(viewName) {
            document.getElementById('grid-view').style.display = 'none';
            document.getElementById('wheel-view').style.display = 'none';
            document.getElementById(viewName).style.display = 'block';
            document.querySelectorAll('.view-btn').forEach(btn => btn.classList.remove('active-view'));
            document.getElementById(viewName + '-btn').classList.add('active-view');
        }

        document.addEventListener('DOMContentLoaded', function() {
            loadFavorites();
            document.getElementById('search').addEventListener('input', applyFilters);
            ['r', 'g', 'b', 'w', 'a', 'brightness', 'color', 'category'].forEach(id => {
                document.getElementById('filter-' + id).addEventListener('change', applyFilters);
            });
            document.getElementById('filter-favorites').addEventListener('change', applyFilters);
            if (localStorage.getItem('dmxDarkMode') === 'true') {
                document.body.classList.add('dark-mode');
                document.getElementById('dark-mode-toggle').textContent = 'Light Mode';
            }
            applyFilters();
            switchView('grid-view');
        });
    </script>
</head>
<body>
    <h1>DMX Color Swatches</h1>

    <button id="dark-mode-toggle" class="theme-toggle" onclick="toggleDarkMode()">Dark Mode</button>

    <div class="controls">
        <div class="filter-group">
            <input type="text" id="search" placeholder="Filter by name...">
        </div>
        {{- range $ch := .ChannelFilters }}
        <div class="filter-group">
            <span class="filter-label">{{$ch.Label}}:</span>
            <select id="filter-{{$ch.ID}}">
                <option value="any">Any</option>
                <option value="0">0 (Off)</option>
                <option value="85">85 (Dim)</option>
                <option value="170">170 (Mid)</option>
                <option value="255">255 (Full)</option>
            </select>
        </div>
        {{- end }}
        <div class="filter-group">
            <span class="filter-label">I:</span>
            <select id="filter-brightness">
                <option value="any">Any</option>
                <option value="85">85 (Dim)</option>
                <option value="170">170 (Mid)</option>
                <option value="255">255 (Full)</option>
            </select>
        </div>
        <div class="filter-group">
            <span class="filter-label">Color:</span>
            <select id="filter-color">
                <option value="any">Any</option>
                <option value="red">Red</option>
                <option value="orange">Orange</option>
                <option value="yellow">Yellow</option>
                <option value="green">Green</option>
                <option value="teal">Teal</option>
                <option value="cyan">Cyan</option>
                <option value="blue">Blue</option>
                <option value="purple">Purple</option>
                <option value="magenta">Magenta</option>
                <option value="pastel">Pastel</option>
                <option value="deep">Deep</option>
                <option value="gray">Gray</option>
                <option value="white">White</option>
            </select>
        </div>
        <div class="filter-group">
            <span class="filter-label">Category:</span>
            <select id="filter-category">
                <option value="any">Any</option>
                <option value="warm">Warm</option>
                <option value="cool">Cool</option>
                <option value="neutral">Neutral</option>
            </select>
        </div>
        <div class="filter-group">
            <label>
                <input type="checkbox" id="filter-favorites">
                Favorites Only
            </label>
        </div>
        <button onclick="resetFilters()">Reset Filters</button>
        <div id="filter-status" style="margin-left: 10px; font-style: italic;"></div>
    </div>

    <div class="view-toggle">
        <button id="grid-view-btn" class="view-btn active-view" onclick="switchView('grid-view')">Grid View</button>
        <button id="wheel-view-btn" class="view-btn" onclick="switchView('wheel-view')">Color Wheel View</button>
    </div>

    <div id="wheel-view" class="section" style="display: none;">
        <h2>Color Wheel Visualization</h2>
        <div class="color-wheel">
            {{- range .Dots }}
            <div id="dot-{{.Index}}" class="color-dot"
                 style="left: {{printf "%.1f" .PX}}px; top: {{printf "%.1f" .PY}}px; background-color: rgb({{.SR}},{{.SG}},{{.SB}});"
                 title="{{.Title}}"></div>
            {{- end }}
        </div>
    </div>

    <div id="grid-view" class="section">
        <h2>Swatches by Index</h2>
        {{- range .Entries }}
        {{template "swatch" .}}
        {{- end }}
    </div>

    <div class="section">
        <h2>Swatches by Brightness</h2>
        {{- range .ByBrightness }}
        {{template "swatch" .}}
        {{- end }}
    </div>

    <footer>Generated {{.GeneratedAt}} &middot; run {{.RunID}}</footer>
</body>
</html>
{{define "swatch"}}
        <div class="swatch" data-name="{{.Name}}" data-r="{{.R}}" data-g="{{.G}}" data-b="{{.B}}"
             data-w="{{.W}}" data-a="{{.A}}" data-brightness="{{.Brightness}}"
             data-color-group="{{.ColorGroup}}" data-category="{{.Category}}"
             data-temperature="{{.Temperature}}" data-index="{{.Index}}">
            <button class="favorite-btn" data-index="{{.Index}}" onclick="toggleFavorite('{{.Index}}')">&#9734;</button>
            <img src="swatches/{{.Filename}}" width="40" height="40">
            <p><strong>#{{printf "%04d" .Index}}</strong></p>
            <p class="dmx-values">R:{{.R}} G:{{.G}} B:{{.B}} W:{{.W}} A:{{.A}} I:{{.Brightness}}</p>
            <p>{{.Name}}</p>
            <p>RGB: ({{.SR}},{{.SG}},{{.SB}})</p>
            <p>Brightness: {{.Brightness}} ({{.BrightnessName}})</p>
            <p class="color-info">{{.ColorGroup}} - {{.Category}} - {{.Temperature}}</p>
        </div>
{{end}}`))
