package profile

const includeTemplate = `# --- include ---
# This is an auto-generated list which should suite most users
# Remove any entries you do not want to include and add any that you do
#
# . ensure you always use the absolute path for directories and files
# . line and inline comments with ` + "`#'" + ` are supported
#
/home
/root
/var
/usr/local
/srv
`

const excludeTemplate = `# --- exclude ---
# This is an auto-generated list which should suite most users
# Remove any entries you do not want to exclude and add any that you do
#
# . ensure you always use the absolute path for directories and files
# . line and inline comments with ` + "`#'" + ` are supported
#
/home/*/.cache/*
/var/cache/*
/var/tmp/*
/var/run
`

const stylesTemplate = `# --- styles ---
# Uncomment a single line to select style for syntax highlighting
#
# STYLE="default"
# STYLE="emacs"
# STYLE="friendly"
# STYLE="colorful"
# STYLE="autumn"
# STYLE="murphy"
# STYLE="manni"
STYLE="monokai"
# STYLE="perldoc"
# STYLE="pastie"
# STYLE="borland"
# STYLE="trac"
# STYLE="native"
# STYLE="fruity"
# STYLE="bw"
# STYLE="vim"
# STYLE="vs"
# STYLE="tango"
# STYLE="rrt"
# STYLE="xcode"
# STYLE="igor"
# STYLE="paraiso-light"
# STYLE="paraiso-dark"
# STYLE="lovelace"
# STYLE="algol"
# STYLE="algol_nu"
# STYLE="arduino"
# STYLE="rainbow_dash"
# STYLE="abap"
# STYLE="solarized-dark"
# STYLE="solarized-light"
`
