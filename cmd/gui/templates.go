package main

func getIndexHTML() string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>DocuDiff - Side-by-side PDF Comparison</title>
    <script src="https://cdn.jsdelivr.net/npm/pdfjs-dist@3.11.174/build/pdf.min.js"></script>
    <style>` + getCSS() + `</style>
</head>
<body>
    <header class="toolbar">
        <h1>📄 DocuDiff</h1>
        <div class="controls">
            <button id="compare-btn" onclick="runComparison()">Compare</button>
            <button onclick="prevChange()">◀ Prev</button>
            <button onclick="nextChange()">Next ▶</button>
            <label class="lock-toggle">
                <input type="checkbox" id="lock-toggle" checked onchange="toggleLock()">
                Sync views
            </label>
            <select id="zoom-select" onchange="changeZoom()">
                <option value="0.75">75%</option>
                <option value="1" selected>100%</option>
                <option value="1.25">125%</option>
                <option value="1.5">150%</option>
            </select>
        </div>
    </header>

    <main class="layout">
        <aside id="sidebar">
            <h2>Changes</h2>
            <div id="change-list" class="change-list">
                <p class="hint">Press Compare to diff the documents.</p>
            </div>
        </aside>

        <section class="panes">
            <div class="pane">
                <div class="pane-title">Original</div>
                <div id="original-scroll" class="scroll-container">
                    <div id="original-pages" class="pages"></div>
                </div>
            </div>
            <div class="pane">
                <div class="pane-title">Changed</div>
                <div id="changed-scroll" class="scroll-container">
                    <div id="changed-pages" class="pages"></div>
                </div>
            </div>
        </section>
    </main>

    <script>` + getJavaScript() + `</script>
</body>
</html>`
}

func getCSS() string {
	return `
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        :root {
            --delete-color: rgb(255, 201, 203);
            --insert-color: rgb(192, 216, 239);
            --selection-color: rgb(59, 130, 246);
            --page-gap: 16px;
            --border-radius: 8px;
        }

        body {
            font-family: 'Inter', 'Segoe UI', system-ui, -apple-system, sans-serif;
            background: #f3f4f6;
            color: #1f2937;
            height: 100vh;
            display: flex;
            flex-direction: column;
        }

        .toolbar {
            display: flex;
            align-items: center;
            justify-content: space-between;
            padding: 10px 18px;
            background: #111827;
            color: #f9fafb;
        }

        .toolbar h1 { font-size: 18px; }

        .controls {
            display: flex;
            align-items: center;
            gap: 10px;
        }

        .controls button {
            padding: 6px 14px;
            border: none;
            border-radius: var(--border-radius);
            background: #3b82f6;
            color: white;
            cursor: pointer;
        }

        .controls button:hover { background: #2563eb; }

        .lock-toggle { font-size: 13px; display: flex; gap: 5px; align-items: center; }

        .layout {
            flex: 1;
            display: flex;
            min-height: 0;
        }

        #sidebar {
            width: 280px;
            background: white;
            border-right: 1px solid #e5e7eb;
            padding: 12px;
            overflow-y: auto;
        }

        #sidebar h2 { font-size: 14px; margin-bottom: 8px; }

        .hint { font-size: 13px; color: #6b7280; }

        .change-item {
            padding: 8px;
            margin-bottom: 6px;
            border-radius: var(--border-radius);
            border: 1px solid #e5e7eb;
            font-size: 12px;
            cursor: pointer;
        }

        .change-item:hover { background: #f9fafb; }
        .change-item.selected { border-color: var(--selection-color); background: #eff6ff; }

        .change-item .kind { font-weight: 600; text-transform: uppercase; font-size: 10px; }
        .change-item.deleted .kind { color: #dc2626; }
        .change-item.inserted .kind { color: #2563eb; }
        .change-item.replaced .kind { color: #7c3aed; }

        .change-item .snippet { margin-top: 3px; color: #374151; word-break: break-word; }
        .change-item .meta { margin-top: 3px; color: #9ca3af; font-size: 11px; }

        .panes {
            flex: 1;
            display: flex;
            gap: 1px;
            background: #d1d5db;
            min-width: 0;
        }

        .pane {
            flex: 1;
            display: flex;
            flex-direction: column;
            background: #e5e7eb;
            min-width: 0;
        }

        .pane-title {
            padding: 6px 12px;
            font-size: 12px;
            font-weight: 600;
            background: #f9fafb;
            border-bottom: 1px solid #e5e7eb;
        }

        .scroll-container {
            flex: 1;
            overflow: auto;
            padding: var(--page-gap);
        }

        .pages { position: relative; width: fit-content; margin: 0 auto; }

        .page-wrap {
            position: relative;
            margin-bottom: var(--page-gap);
            background: white;
            box-shadow: 0 1px 4px rgba(0,0,0,0.2);
        }

        .annotation {
            position: absolute;
            pointer-events: auto;
            cursor: pointer;
        }

        .annotation.highlight { opacity: 0.45; }

        .annotation.border {
            background: transparent;
            border: 2px solid var(--selection-color);
        }
    `
}
